// Package score computes a solved puzzle's points and the text players share.
package score

import (
	"fmt"
	"strings"
)

const (
	// Max is the score of a solve with no guesses and no timer.
	Max = 100
	// Min is the floor every solve gets.
	Min = 5

	guessPenalty = 10
	timerPenalty = 20
)

// PlayURL is printed at the end of share text.
const PlayURL = "career-ladder.pages.dev"

// Points scores a solve: 10 points off per guess, 20 off when the timer was
// used, never below Min.
func Points(guesses int, timerUsed bool) int {
	points := Max - guesses*guessPenalty
	if timerUsed {
		points -= timerPenalty
	}
	return max(points, Min)
}

// Solve describes one finished puzzle.
type Solve struct {
	PuzzleNumber  int
	Guesses       int
	ClubsRevealed int
	Seconds       int
	TimerUsed     bool
}

// Points scores the solve.
func (s Solve) Points() int {
	return Points(s.Guesses, s.TimerUsed)
}

// ShareText renders the solve as the three-part message players post.
func (s Solve) ShareText() string {
	points := s.Points()
	noun := "guesses"
	if s.Guesses == 1 {
		noun = "guess"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CAREER LADDER #%d\n", s.PuzzleNumber)
	fmt.Fprintf(&b, "%s %d pts | %d %s | %d clubs revealed | %ds\n\n",
		badge(points), points, s.Guesses, noun, s.ClubsRevealed, s.Seconds)
	fmt.Fprintf(&b, "Play at: %s", PlayURL)
	return b.String()
}

func badge(points int) string {
	switch {
	case points >= 80:
		return "🔥"
	case points >= 60:
		return "⚡"
	case points >= 40:
		return "✨"
	default:
		return "💪"
	}
}
