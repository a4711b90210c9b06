// Package extract — section finders, one per known page layout.
package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/careerladder/core"
)

// GridFinder reads the current profile layout, where each transfer is a
// div grid row.
type GridFinder struct{}

const (
	gridRowSelector    = "div.grid.tm-player-transfer-history-grid"
	gridDateSelector   = ".tm-player-transfer-history-grid__date"
	gridSeasonSelector = ".tm-player-transfer-history-grid__season"
	gridNewClubCell    = ".tm-player-transfer-history-grid__new-club"
	gridClubLink       = ".tm-player-transfer-history-grid__club-link"
	crestSelector      = "img.tiny_wappen"
)

// FindSection implements SectionFinder.
func (GridFinder) FindSection(doc *goquery.Document) []core.RawTransferRow {
	var rows []core.RawTransferRow
	doc.Find(historySelector).First().Find(gridRowSelector).Each(func(_ int, s *goquery.Selection) {
		club := gridClub(s)
		if club == "" {
			return // heading or footer row
		}

		date := collapseSpace(s.Find(gridDateSelector).First().Text())
		if date == "" {
			date = collapseSpace(s.Find(gridSeasonSelector).First().Text())
		}
		rows = append(rows, core.RawTransferRow{Club: club, DateText: date})
	})
	return rows
}

// gridClub returns the club the player joined in a grid row.
func gridClub(row *goquery.Selection) string {
	if cell := row.Find(gridNewClubCell).First(); cell.Length() > 0 {
		if alt := crestAlt(cell.Find(crestSelector).First()); alt != "" {
			return alt
		}
		if name := collapseSpace(cell.Find(gridClubLink).First().Text()); name != "" {
			return name
		}
		return collapseSpace(cell.Text())
	}
	return crestAlt(row.Find(crestSelector).Last())
}

// TableFinder reads the legacy layout, where the history is an HTML table.
type TableFinder struct{}

const (
	tableRowSelector  = "table tr.zeile-transfer"
	tableClubSelector = "a.vereinsname"
)

// FindSection implements SectionFinder.
func (TableFinder) FindSection(doc *goquery.Document) []core.RawTransferRow {
	var rows []core.RawTransferRow
	doc.Find(historySelector).First().Find(tableRowSelector).Each(func(_ int, s *goquery.Selection) {
		club := tableClub(s)
		if club == "" {
			return
		}

		cells := s.Find("td")
		date := collapseSpace(cells.Eq(1).Text())
		if date == "" {
			date = collapseSpace(cells.Eq(0).Text())
		}
		rows = append(rows, core.RawTransferRow{Club: club, DateText: date})
	})
	return rows
}

// tableClub reads the joined club from the last cell carrying a crest or a
// club link.
func tableClub(row *goquery.Selection) string {
	var joined *goquery.Selection
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		if td.Find("img[alt], "+tableClubSelector).Length() > 0 {
			joined = td
		}
	})
	if joined == nil {
		return ""
	}
	if alt := crestAlt(joined.Find("img[alt]").First()); alt != "" {
		return alt
	}
	return collapseSpace(joined.Find(tableClubSelector).First().Text())
}

func crestAlt(img *goquery.Selection) string {
	alt, _ := img.Attr("alt")
	return collapseSpace(alt)
}
