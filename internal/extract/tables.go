package extract

import (
	"regexp"
	"strings"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// cellSeparator splits a line into cells: a pipe, a tab, or a run of
// two or more spaces.
var cellSeparator = regexp.MustCompile(`\s*\|\s*|\t+| {2,}`)

// DetectTables finds table grids in page text. A table is a run of two
// or more consecutive lines that each split into at least two cells;
// the first row of the run is its header. Single-line runs are plain
// text, not tables.
func DetectTables(pageText string, pageNumber int) []entity.Table {
	var tables []entity.Table
	var current [][]string

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, entity.Table{
				PageNumber: pageNumber,
				Rows:       padRows(current),
			})
		}
		current = nil
	}

	for _, line := range strings.Split(pageText, "\n") {
		cells := splitCells(line)
		if len(cells) >= 2 {
			current = append(current, cells)
			continue
		}
		flush()
	}
	flush()

	return tables
}

func splitCells(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := cellSeparator.Split(line, -1)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	// A line that only produced one cell is not a table row.
	if len(cells) < 2 {
		return nil
	}
	return cells
}

// padRows right-pads ragged rows with empty cells so every row has the
// header's column count. Extra cells on later rows are kept as-is.
func padRows(rows [][]string) [][]string {
	cols := len(rows[0])
	for i, row := range rows {
		for len(row) < cols {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}
