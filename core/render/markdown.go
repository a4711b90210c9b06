// Package render provides output renderers for the careerladder pipeline.
// This file implements the Markdown puzzle sheet: each player is laid out
// as HTML and converted with html-to-markdown, so escaping of club names
// is handled in one place.
package render

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/careerladder/core"
)

// MarkdownRenderer writes a human-readable puzzle sheet.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render implements core.Renderer.
func (r *MarkdownRenderer) Render(players []core.PlayerRecord) ([]byte, error) {
	var b strings.Builder
	b.WriteString("<h1>Career Ladder puzzles</h1>")
	fmt.Fprintf(&b, "<p>%d players</p>", len(players))
	for _, rec := range players {
		writePlayerHTML(&b, rec)
	}

	markdown, err := htmltomarkdown.ConvertString(b.String())
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func writePlayerHTML(b *strings.Builder, rec core.PlayerRecord) {
	esc := html.EscapeString
	fmt.Fprintf(b, "<h2>%s</h2>", esc(rec.Canonical))
	b.WriteString("<ul>")
	fmt.Fprintf(b, "<li><strong>Difficulty:</strong> %d/10</li>", rec.Puzzle.Difficulty)
	fmt.Fprintf(b, "<li><strong>Starting clubs:</strong> %s, %s</li>",
		esc(rec.Puzzle.InitialClubs[0]), esc(rec.Puzzle.InitialClubs[1]))
	fmt.Fprintf(b, "<li><strong>Revealed after a miss:</strong> %s</li>", esc(rec.Puzzle.ThirdClub))
	b.WriteString("</ul><h3>Career</h3><ol>")
	for _, t := range rec.Timeline {
		fmt.Fprintf(b, "<li>%s (%s)</li>", esc(t.Club), t.Span())
	}
	b.WriteString("</ol>")
}
