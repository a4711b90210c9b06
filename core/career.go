// Package core — career data model.
package core

import "strconv"

// Present is the EndYear of a tenure that is still ongoing (or the most
// recent one known at collection time). It never collides with a real year.
const Present = -1

// RawTransferRow is one row of a player's transfer history as read from the
// source page, before any year parsing.
type RawTransferRow struct {
	Club     string
	DateText string
}

// Profile is what document access hands to the core for a single player.
// An empty Name or no Rows means the page could not be read.
type Profile struct {
	Name string
	Rows []RawTransferRow
}

// Tenure is a contiguous spell at one club.
type Tenure struct {
	Club      string
	StartYear int
	EndYear   int
}

// IsPresent reports whether the tenure is open-ended.
func (t Tenure) IsPresent() bool {
	return t.EndYear == Present
}

// Span formats the tenure years the way the puzzle data expects them,
// e.g. "2003-2008" or "2015-Present".
func (t Tenure) Span() string {
	end := "Present"
	if !t.IsPresent() {
		end = strconv.Itoa(t.EndYear)
	}
	return strconv.Itoa(t.StartYear) + "-" + end
}

// Timeline is a player's tenures in chronological order.
type Timeline []Tenure

// Clubs returns the club names in order.
func (tl Timeline) Clubs() []string {
	clubs := make([]string, len(tl))
	for i, t := range tl {
		clubs[i] = t.Club
	}
	return clubs
}

// Spans returns the formatted year ranges in order.
func (tl Timeline) Spans() []string {
	spans := make([]string, len(tl))
	for i, t := range tl {
		spans[i] = t.Span()
	}
	return spans
}

// PuzzleConfig is the clue set for one daily puzzle.
type PuzzleConfig struct {
	InitialClubs [2]string
	ThirdClub    string
	Difficulty   int
}

// PlayerRecord is a fully derived player, ready for export.
type PlayerRecord struct {
	ID        string
	Canonical string
	Timeline  Timeline
	Puzzle    PuzzleConfig
	SourceURL string
}
