package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/derive"
	"github.com/gaurav-prasanna/careerladder/core/pipeline"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable draws rows under headers in a rounded box. Short rows are
// padded with empty cells; aligns applies per column and defaults to left.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// careerTable lists a timeline, one tenure per row.
func careerTable(timeline core.Timeline) string {
	rows := make([][]string, 0, len(timeline))
	for i, t := range timeline {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Club, t.Span()})
	}
	return renderTable([]string{"#", "Club", "Years"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}

// dropTable lists the players left out of a batch.
func dropTable(drops []pipeline.Drop) string {
	rows := make([][]string, 0, len(drops))
	for _, d := range drops {
		msg := ""
		if d.Err != nil {
			msg = d.Err.Error()
		}
		rows = append(rows, []string{d.URL, string(d.Reason), msg})
	}
	return renderTable([]string{"URL", "Reason", "Error"}, rows, nil)
}

// puzzleText describes the puzzle a player presents, without revealing them.
func puzzleText(p core.PuzzleConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Clues:      %s → %s\n", p.InitialClubs[0], p.InitialClubs[1])
	fmt.Fprintf(&b, "Third club: %s\n", p.ThirdClub)
	fmt.Fprintf(&b, "Difficulty: %d/%d\n", p.Difficulty, derive.MaxDifficulty)
	return b.String()
}
