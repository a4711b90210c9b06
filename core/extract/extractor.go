// Package extract implements the Extractor interface.
// It reads a Transfermarkt profile page and returns:
//  1. The player's display name from the page header
//  2. The transfer-history rows, located by the first SectionFinder that
//     recognises the page layout
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/normalize"
)

const (
	nameSelector        = "h1.data-header__headline-wrapper"
	shirtNumberSelector = ".data-header__shirt-number"
	historySelector     = "div.box.transferhistorie"
)

// SectionFinder locates the transfer-history section in one page layout and
// reads a (club, date) pair per row. It returns nil when the layout does not
// match; it never fails.
type SectionFinder interface {
	FindSection(doc *goquery.Document) []core.RawTransferRow
}

// HTMLExtractor reads profiles from raw HTML.
type HTMLExtractor struct {
	finders []SectionFinder
}

// New creates an HTMLExtractor trying finders in order. With no finders it
// uses the grid layout, then the legacy table layout.
func New(finders ...SectionFinder) *HTMLExtractor {
	if len(finders) == 0 {
		finders = []SectionFinder{GridFinder{}, TableFinder{}}
	}
	return &HTMLExtractor{finders: finders}
}

// Extract parses html and returns the profile. A page without a name or
// without a history section yields empty fields, not an error.
func (e *HTMLExtractor) Extract(html string) (core.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return core.Profile{}, fmt.Errorf("parsing HTML: %w", err)
	}

	profile := core.Profile{Name: PlayerName(doc)}
	for _, finder := range e.finders {
		if rows := finder.FindSection(doc); len(rows) > 0 {
			profile.Rows = chronological(rows)
			break
		}
	}
	return profile, nil
}

// PlayerName reads the header name, without the shirt number badge.
func PlayerName(doc *goquery.Document) string {
	header := doc.Find(nameSelector).First().Clone()
	header.Find(shirtNumberSelector).Remove()
	return collapseSpace(header.Text())
}

// chronological returns rows earliest first. Transfermarkt lists the latest
// transfer at the top, so a history whose first dated row is later than its
// last dated row is reversed.
func chronological(rows []core.RawTransferRow) []core.RawTransferRow {
	first, last := -1, -1
	for _, row := range rows {
		year, ok := normalize.ExtractYear(row.DateText)
		if !ok {
			continue
		}
		if first == -1 {
			first = year
		}
		last = year
	}
	if first <= last {
		return rows
	}

	reversed := make([]core.RawTransferRow, len(rows))
	for i, row := range rows {
		reversed[len(rows)-1-i] = row
	}
	return reversed
}

// collapseSpace trims s and folds internal whitespace runs to one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
