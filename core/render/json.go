// Package render — JSON renderer.
// Writes the player collection in the shape the puzzle front end reads
// (id, canonical, clubs, years, puzzleConfig), and reads it back.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gaurav-prasanna/careerladder/core"
)

// puzzleJSON mirrors core.PuzzleConfig on the wire.
type puzzleJSON struct {
	InitialClubs [2]string `json:"initialClubs"`
	ThirdClub    string    `json:"thirdClub"`
	Difficulty   int       `json:"difficulty"`
}

// playerJSON is one exported player.
type playerJSON struct {
	ID           string     `json:"id"`
	Canonical    string     `json:"canonical"`
	Clubs        []string   `json:"clubs"`
	Years        []string   `json:"years"`
	PuzzleConfig puzzleJSON `json:"puzzleConfig"`
	Source       string     `json:"source,omitempty"`
}

// documentJSON is the top-level JSON export.
type documentJSON struct {
	GeneratedAt string       `json:"generatedAt"`
	Count       int          `json:"count"`
	Players     []playerJSON `json:"players"`
}

func toPlayerJSON(rec core.PlayerRecord) playerJSON {
	return playerJSON{
		ID:        rec.ID,
		Canonical: rec.Canonical,
		Clubs:     rec.Timeline.Clubs(),
		Years:     rec.Timeline.Spans(),
		PuzzleConfig: puzzleJSON{
			InitialClubs: rec.Puzzle.InitialClubs,
			ThirdClub:    rec.Puzzle.ThirdClub,
			Difficulty:   rec.Puzzle.Difficulty,
		},
		Source: rec.SourceURL,
	}
}

// JSONRenderer produces the JSON export.
type JSONRenderer struct {
	now func() time.Time
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{now: time.Now}
}

// Render implements core.Renderer.
func (r *JSONRenderer) Render(players []core.PlayerRecord) ([]byte, error) {
	doc := documentJSON{
		GeneratedAt: r.now().UTC().Format(time.RFC3339),
		Count:       len(players),
		Players:     make([]playerJSON, 0, len(players)),
	}
	for _, rec := range players {
		doc.Players = append(doc.Players, toPlayerJSON(rec))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// DecodeJSON reads a JSON export back into player records.
func DecodeJSON(data []byte) ([]core.PlayerRecord, error) {
	var doc documentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	records := make([]core.PlayerRecord, 0, len(doc.Players))
	for _, p := range doc.Players {
		if len(p.Clubs) != len(p.Years) {
			return nil, fmt.Errorf("player %s: %d clubs but %d year ranges", p.ID, len(p.Clubs), len(p.Years))
		}
		timeline := make(core.Timeline, len(p.Clubs))
		for i, club := range p.Clubs {
			start, end, err := parseSpan(p.Years[i])
			if err != nil {
				return nil, fmt.Errorf("player %s: %w", p.ID, err)
			}
			timeline[i] = core.Tenure{Club: club, StartYear: start, EndYear: end}
		}
		records = append(records, core.PlayerRecord{
			ID:        p.ID,
			Canonical: p.Canonical,
			Timeline:  timeline,
			Puzzle: core.PuzzleConfig{
				InitialClubs: p.PuzzleConfig.InitialClubs,
				ThirdClub:    p.PuzzleConfig.ThirdClub,
				Difficulty:   p.PuzzleConfig.Difficulty,
			},
			SourceURL: p.Source,
		})
	}
	return records, nil
}

// parseSpan is the inverse of core.Tenure.Span.
func parseSpan(span string) (int, int, error) {
	startText, endText, ok := strings.Cut(span, "-")
	if !ok {
		return 0, 0, fmt.Errorf("malformed year range %q", span)
	}
	start, err := strconv.Atoi(startText)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed year range %q", span)
	}
	if endText == "Present" {
		return start, core.Present, nil
	}
	end, err := strconv.Atoi(endText)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed year range %q", span)
	}
	return start, end, nil
}
