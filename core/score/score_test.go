package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	cases := []struct {
		guesses int
		timer   bool
		want    int
	}{
		{0, false, 100},
		{1, false, 90},
		{3, true, 50},
		{9, false, 10},
		{10, false, Min},
		{8, true, Min},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Points(tc.guesses, tc.timer), "guesses=%d timer=%v", tc.guesses, tc.timer)
	}
}

func TestShareText(t *testing.T) {
	t.Run("Should render the share message", func(t *testing.T) {
		s := Solve{PuzzleNumber: 42, Guesses: 2, ClubsRevealed: 3, Seconds: 75}
		assert.Equal(t,
			"CAREER LADDER #42\n🔥 80 pts | 2 guesses | 3 clubs revealed | 75s\n\nPlay at: career-ladder.pages.dev",
			s.ShareText())
	})

	t.Run("Should use the singular for one guess", func(t *testing.T) {
		s := Solve{PuzzleNumber: 1, Guesses: 1, TimerUsed: true}
		assert.Contains(t, s.ShareText(), "⚡ 70 pts | 1 guess |")
	})

	t.Run("Should pick badges by points", func(t *testing.T) {
		assert.Equal(t, "✨", badge(40))
		assert.Equal(t, "💪", badge(39))
	})
}
