// Package rotation picks the daily player. The pick depends only on the
// collection size and the date, so every client agrees on today's puzzle.
package rotation

import "time"

const day = 24 * time.Hour

// DaysSinceEpoch returns whole UTC days since 1970-01-01.
func DaysSinceEpoch(now time.Time) int {
	return int(now.UTC().Unix() / int64(day/time.Second))
}

// Index returns today's position in a collection of n players, or -1 when
// the collection is empty.
func Index(n int, now time.Time) int {
	if n <= 0 {
		return -1
	}
	return DaysSinceEpoch(now) % n
}

// PuzzleNumber numbers daily puzzles from launch (puzzle #1). Dates before
// launch return 0.
func PuzzleNumber(launch, now time.Time) int {
	diff := DaysSinceEpoch(now) - DaysSinceEpoch(launch)
	if diff < 0 {
		return 0
	}
	return diff + 1
}
