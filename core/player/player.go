// Package player turns an extracted profile into a PlayerRecord.
// It owns the acceptance gate: a player is kept only with a name and a
// timeline long enough to hide clubs in.
package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/derive"
	"github.com/gaurav-prasanna/careerladder/core/normalize"
)

// MinTenures is the shortest timeline a puzzle can be built from.
const MinTenures = 3

var (
	// ErrEmptyExtraction means the page yielded no name or no history rows.
	ErrEmptyExtraction = errors.New("no player name or transfer history found")
	// ErrInsufficientHistory means the timeline is shorter than MinTenures.
	ErrInsufficientHistory = errors.New("not enough clubs")
)

// ID derives a record id from a display name: lowercase, keeping only a-z and 0-9.
// Names differing only in case or punctuation share an id.
func ID(name string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(name) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Builder applies the acceptance gate and derives puzzles.
type Builder struct {
	normalizer core.Normalizer
	deriver    core.Deriver
}

// NewBuilder creates a Builder. Nil stages fall back to the defaults.
func NewBuilder(normalizer core.Normalizer, deriver core.Deriver) *Builder {
	if normalizer == nil {
		normalizer = normalize.New(nil)
	}
	if deriver == nil {
		deriver = derive.New()
	}
	return &Builder{normalizer: normalizer, deriver: deriver}
}

// Build normalizes the profile and derives its puzzle. It returns
// ErrEmptyExtraction or ErrInsufficientHistory (wrapped) when the player
// must be dropped; no partial record is ever returned.
func (b *Builder) Build(profile core.Profile, sourceURL string) (core.PlayerRecord, error) {
	name := strings.TrimSpace(profile.Name)
	if name == "" || len(profile.Rows) == 0 {
		return core.PlayerRecord{}, ErrEmptyExtraction
	}

	timeline := b.normalizer.Normalize(profile.Rows)
	if len(timeline) == 0 {
		return core.PlayerRecord{}, fmt.Errorf("%s: %w", name, ErrEmptyExtraction)
	}
	if len(timeline) < MinTenures {
		return core.PlayerRecord{}, fmt.Errorf("%s: %w (%d)", name, ErrInsufficientHistory, len(timeline))
	}

	return core.PlayerRecord{
		ID:        ID(name),
		Canonical: name,
		Timeline:  timeline,
		Puzzle:    b.deriver.Derive(timeline),
		SourceURL: sourceURL,
	}, nil
}
