// Package derive implements the Deriver interface.
// Clue selection is a pure function of the timeline, so the same player
// always yields the same puzzle.
package derive

import "github.com/gaurav-prasanna/careerladder/core"

const (
	// MinDifficulty and MaxDifficulty bound the difficulty score.
	MinDifficulty = 1
	MaxDifficulty = 10

	// midCareerThreshold is the smallest timeline whose initial clues skip
	// the first and last clubs.
	midCareerThreshold = 5
)

// PuzzleDeriver selects clues and a difficulty for a timeline.
type PuzzleDeriver struct{}

// New creates a PuzzleDeriver.
func New() *PuzzleDeriver {
	return &PuzzleDeriver{}
}

// Derive builds the puzzle for timeline. The caller guarantees at least
// three tenures.
func (d *PuzzleDeriver) Derive(timeline core.Timeline) core.PuzzleConfig {
	n := len(timeline)

	first, second := 0, n-1
	if n >= midCareerThreshold {
		first, second = 1, n-2
	}

	return core.PuzzleConfig{
		InitialClubs: [2]string{timeline[first].Club, timeline[second].Club},
		ThirdClub:    timeline[n/2].Club,
		Difficulty:   Difficulty(n),
	}
}

// Difficulty scores a career of n clubs: more clubs, more distractors.
func Difficulty(n int) int {
	return min(MaxDifficulty, max(MinDifficulty, n-2))
}
