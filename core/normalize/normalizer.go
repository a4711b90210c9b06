// Package normalize implements the Normalizer interface.
// It collapses raw transfer rows into a career timeline: one tenure per
// uninterrupted spell at a club, the last one left open.
package normalize

import (
	"log/slog"
	"regexp"
	"strconv"

	"github.com/gaurav-prasanna/careerladder/core"
)

var yearRegex = regexp.MustCompile(`\d{4}`)

// ExtractYear returns the first run of four digits in text as a year.
// "Jul 1, 2004" and "2004/05" both yield 2004.
func ExtractYear(text string) (int, bool) {
	m := yearRegex.FindString(text)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}

// HistoryNormalizer builds timelines from transfer rows.
type HistoryNormalizer struct {
	logger *slog.Logger
}

// New creates a HistoryNormalizer. A nil logger discards skip diagnostics.
func New(logger *slog.Logger) *HistoryNormalizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HistoryNormalizer{logger: logger}
}

// Normalize converts rows (earliest first) into a timeline.
//
// A row whose date carries no year is skipped without touching the open
// tenure. A change of club closes the open tenure at the new row's year and
// opens the next one at that same year. Consecutive rows at the same club are
// absorbed, whatever their years. The final club ends at core.Present.
func (n *HistoryNormalizer) Normalize(rows []core.RawTransferRow) core.Timeline {
	var (
		timeline  core.Timeline
		current   string
		startYear int
		open      bool
	)

	for i, row := range rows {
		year, ok := ExtractYear(row.DateText)
		if !ok {
			n.logger.Debug("skipping row without year", "index", i, "club", row.Club, "date", row.DateText)
			continue
		}

		switch {
		case !open:
			current, startYear, open = row.Club, year, true
		case row.Club != current:
			timeline = append(timeline, core.Tenure{Club: current, StartYear: startYear, EndYear: year})
			current, startYear = row.Club, year
		default:
			if year < startYear {
				n.logger.Debug("year moves backwards within tenure", "club", current, "start", startYear, "year", year)
			}
		}
	}

	if open {
		timeline = append(timeline, core.Tenure{Club: current, StartYear: startYear, EndYear: core.Present})
	}
	return timeline
}
