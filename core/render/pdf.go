// Package render — PDF renderer.
// Produces printable puzzle cards with gofpdf: one page per player with the
// clues up top and the answer timeline below.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/careerladder/core"
)

// PDFRenderer renders puzzle cards as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render implements core.Renderer.
func (r *PDFRenderer) Render(players []core.PlayerRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	// Core fonts are cp1252; club names carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if len(players) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "I", 12)
		pdf.MultiCell(0, 6, "No players.", "", "L", false)
	}

	for i, rec := range players {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("Puzzle %d", i+1)), "", "L", false)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("Difficulty: %d/10", rec.Puzzle.Difficulty), "", "L", false)
		pdf.MultiCell(0, 6, tr("Starting clubs: "+rec.Puzzle.InitialClubs[0]+", "+rec.Puzzle.InitialClubs[1]), "", "L", false)
		pdf.MultiCell(0, 6, tr("Revealed after a miss: "+rec.Puzzle.ThirdClub), "", "L", false)
		pdf.Ln(6)

		// Answer section.
		pdf.SetDrawColor(180, 180, 180)
		pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, tr(rec.Canonical), "", "L", false)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", 10)
		for j, t := range rec.Timeline {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s (%s)", j+1, t.Club, t.Span())), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
