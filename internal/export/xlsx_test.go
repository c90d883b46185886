package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWorkbook_RowPerRecord(t *testing.T) {
	// WHAT: One header row, one data row per record, optional price
	// cells left empty.
	data, err := Workbook(sampleRecords())
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Projects")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Project ID" || rows[0][5] != "Min Price" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "pearl_one_capital" || rows[1][5] != "5500000" {
		t.Errorf("first row = %v", rows[1])
	}
	// Second record has no prices; the min price cell stays empty.
	if len(rows[2]) > 5 && rows[2][5] != "" {
		t.Errorf("second row min price = %q, want empty", rows[2][5])
	}
}

func TestWriteWorkbook_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)
	if err := w.WriteWorkbook(sampleRecords()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "projects.xlsx")); err != nil {
		t.Errorf("missing workbook: %v", err)
	}
}

func TestUnitSummaryAndTruncate(t *testing.T) {
	recs := sampleRecords()
	if got := unitSummary(recs[0].UnitTypes); got != "2 Bed (1250)" {
		t.Errorf("summary = %q", got)
	}
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Errorf("truncate short = %q", got)
	}
}
