package entity

// Document is one source file's extracted page text and tables.
// Immutable once produced by the extraction service.
type Document struct {
	Identifier string  `json:"identifier"`
	Filename   string  `json:"filename"`
	RawText    string  `json:"raw_text"`
	Pages      int     `json:"pages"`
	Tables     []Table `json:"tables"`
}

// Table is a header row plus zero or more data rows extracted from a page.
// Cells are optional; an absent cell is the empty string.
type Table struct {
	PageNumber int        `json:"page"`
	Rows       [][]string `json:"rows"`
}

// Header returns the table's first row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns every row after the header.
func (t Table) DataRows() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Cols returns the column count of the header row.
func (t Table) Cols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// RowIsBlank reports whether every cell in the row is empty.
func RowIsBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
