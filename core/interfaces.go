// Package core defines the domain types and pipeline interfaces for careerladder.
// Each stage of the pipeline is a small interface so collaborators
// (network, markup, output format) can be swapped without touching the
// normalizer or the deriver.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor locates the player's name and transfer-history rows in raw HTML.
// A missing name or section is reported as an empty Profile, not an error.
type Extractor interface {
	Extract(html string) (Profile, error)
}

// Normalizer turns raw transfer rows into a career timeline.
type Normalizer interface {
	Normalize(rows []RawTransferRow) Timeline
}

// Deriver selects puzzle clues from a timeline of at least three tenures.
type Deriver interface {
	Derive(timeline Timeline) PuzzleConfig
}

// Renderer converts a batch of player records into a final output format.
type Renderer interface {
	Render(players []PlayerRecord) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".ts").
	Extension() string
}
