package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// Workbook returns an XLSX workbook (as bytes) with one row per
// project record.
func Workbook(records []entity.ProjectRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Projects"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Project ID",
		"Name",
		"Type",
		"Location",
		"Developer",
		"Min Price",
		"Max Price",
		"Down Payment %",
		"Duration (months)",
		"Amenities",
		"Unit Types",
		"Tables Found",
		"Pages",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ID)
		write(2, r.Project.Name)
		write(3, string(r.Project.Type))
		write(4, r.Project.Location)
		write(5, r.Project.Developer)
		if r.PriceRange.Min != nil {
			write(6, *r.PriceRange.Min)
		}
		if r.PriceRange.Max != nil {
			write(7, *r.PriceRange.Max)
		}
		if r.PaymentPlan.DownPaymentPercent != nil {
			write(8, *r.PaymentPlan.DownPaymentPercent)
		}
		if r.PaymentPlan.DurationMonths != nil {
			write(9, *r.PaymentPlan.DurationMonths)
		}
		write(10, truncate(strings.Join(r.Amenities, ", "), 140))
		write(11, truncate(unitSummary(r.UnitTypes), 140))
		write(12, r.TablesFound)
		write(13, r.Pages)
		write(14, r.Error)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // id
	_ = f.SetColWidth(sheet, "B", "B", 28) // name
	_ = f.SetColWidth(sheet, "C", "E", 18) // type, location, developer
	_ = f.SetColWidth(sheet, "F", "G", 14) // prices
	_ = f.SetColWidth(sheet, "J", "K", 48) // amenities, units
	_ = f.SetColWidth(sheet, "N", "N", 40) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteWorkbook writes the projects workbook into the output directory.
func (w *Writer) WriteWorkbook(records []entity.ProjectRecord) error {
	start := time.Now()
	data, err := Workbook(records)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(w.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", w.OutDir, err)
	}
	path := filepath.Join(w.OutDir, "projects.xlsx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Logger.Info("export.xlsx.ok",
		"path", path,
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// unitSummary renders a compact one-line description of unit fragments.
func unitSummary(units []entity.UnitType) string {
	var parts []string
	for _, u := range units {
		switch {
		case u.Type != "" && u.Area != "":
			parts = append(parts, u.Type+" ("+u.Area+")")
		case u.Type != "":
			parts = append(parts, u.Type)
		case u.Area != "":
			parts = append(parts, u.Area)
		}
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
