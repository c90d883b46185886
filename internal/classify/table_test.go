package classify

import (
	"reflect"
	"testing"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/catalog"
	"github.com/propintel/brochure-extractor/internal/entity"
)

func TestTable_PaymentWinsOverUnit(t *testing.T) {
	// WHAT: A header matching both keyword sets classifies as a payment
	// schedule.
	// WHY: The category priority is fixed; mixed headers like
	// "Unit / Payment Due" must resolve deterministically.
	cat := catalog.Default()
	tbl := entity.Table{Rows: [][]string{
		{"Unit Type", "Payment Due", "Amount"},
		{"2 Bed", "1", "500,000"},
	}}

	if got := Table(tbl, cat); got != constants.TablePaymentSchedule {
		t.Errorf("got %q, want payment schedule", got)
	}
}

func TestTable_UnitAndOther(t *testing.T) {
	cat := catalog.Default()

	unit := entity.Table{Rows: [][]string{
		{"Type", "Area", "Floor"},
		{"Studio", "450 sqft", "3"},
	}}
	if got := Table(unit, cat); got != constants.TableUnitSpec {
		t.Errorf("unit table: got %q", got)
	}

	other := entity.Table{Rows: [][]string{
		{"Milestone", "Date"},
		{"Groundbreaking", "2024"},
	}}
	if got := Table(other, cat); got != constants.TableOther {
		t.Errorf("other table: got %q", got)
	}
}

func TestClassifiable_RejectsHeaderOnly(t *testing.T) {
	// WHAT: A table with only a header row carries no data and is never
	// classified.
	headerOnly := entity.Table{Rows: [][]string{{"Payment", "Amount"}}}
	if Classifiable(headerOnly) {
		t.Error("header-only table should not be classifiable")
	}
	if Classifiable(entity.Table{}) {
		t.Error("empty table should not be classifiable")
	}
}

func TestClassifyCell_RulePriority(t *testing.T) {
	// WHAT: Each rule in isolation, plus the priority on ambiguous
	// cells: percent beats amount beats number; digit-free cells are
	// descriptions.
	tests := []struct {
		cell string
		want string
	}{
		{"10%", "percentage"},
		{"500,000", "amount"},
		{"123456", "amount"}, // length > 4 without separator
		{"3", "number"},
		{"On Booking", "description"},
		{"", ""},
		{"10,000%", "percentage"}, // percent wins over separator
	}
	for _, tt := range tests {
		if got := ClassifyCell(tt.cell); got != tt.want {
			t.Errorf("ClassifyCell(%q) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestInstallmentRuleFields_Order(t *testing.T) {
	want := []string{"percentage", "amount", "number", "description"}
	if got := InstallmentRuleFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("rule order = %v, want %v", got, want)
	}
}

func TestMapInstallmentRow(t *testing.T) {
	// WHAT: A full row populates all four fields; later cells of the
	// same kind overwrite earlier ones; blank rows and unclassifiable
	// rows are dropped.
	inst, ok := MapInstallmentRow([]string{"1", "On Booking", "500,000", "10%"})
	if !ok {
		t.Fatal("row should map")
	}
	if inst.Number == nil || *inst.Number != 1 {
		t.Errorf("number = %+v, want 1", inst.Number)
	}
	if inst.Amount == nil || *inst.Amount != 500000 {
		t.Errorf("amount = %+v, want 500000", inst.Amount)
	}
	if inst.Percentage == nil || *inst.Percentage != 10 {
		t.Errorf("percentage = %+v, want 10", inst.Percentage)
	}
	if inst.Description != "On Booking" {
		t.Errorf("description = %q", inst.Description)
	}

	// Later same-kind cell wins.
	inst, _ = MapInstallmentRow([]string{"5%", "10%"})
	if inst.Percentage == nil || *inst.Percentage != 10 {
		t.Errorf("overwrite: percentage = %+v, want 10", inst.Percentage)
	}

	if _, ok := MapInstallmentRow([]string{"", "  ", ""}); ok {
		t.Error("blank row should be dropped")
	}
}

func TestMapUnitRowTyped(t *testing.T) {
	// WHAT: Bedrooms set Type from the cell, areas lose separators, and
	// a price needs to exceed 1,000,000.
	unit, ok := MapUnitRowTyped([]string{"2 Bed Apartment", "1,250 sq ft", "8,500,000"}, 3)
	if !ok {
		t.Fatal("row should map")
	}
	if unit.Bedrooms == nil || *unit.Bedrooms != 2 {
		t.Errorf("bedrooms = %+v, want 2", unit.Bedrooms)
	}
	if unit.Type != "2 Bed Apartment" {
		t.Errorf("type = %q", unit.Type)
	}
	if unit.Area != "1250" {
		t.Errorf("area = %q, want 1250", unit.Area)
	}
	if unit.Price == nil || *unit.Price != 8500000 {
		t.Errorf("price = %+v, want 8500000", unit.Price)
	}
	if unit.Page != 3 {
		t.Errorf("page = %d, want 3", unit.Page)
	}

	// A number at or below the floor is not a price.
	unit, ok = MapUnitRowTyped([]string{"450 sqft", "1,000,000"}, 1)
	if !ok {
		t.Fatal("row should still map on area alone")
	}
	if unit.Price != nil {
		t.Errorf("price = %d, want absent", *unit.Price)
	}
}

func TestMapUnitRowRaw(t *testing.T) {
	// WHAT: Positional header->value mapping, lower-cased keys, cells
	// past the header width ignored.
	unit, ok := MapUnitRowRaw(
		[]string{"Studio", "450 sqft", "extra"},
		[]string{"Type", "Area"},
		2,
	)
	if !ok {
		t.Fatal("row should map")
	}
	want := map[string]string{"type": "Studio", "area": "450 sqft"}
	if !reflect.DeepEqual(unit.RawData, want) {
		t.Errorf("raw data = %v, want %v", unit.RawData, want)
	}
}

func TestTablePrices_Band(t *testing.T) {
	// WHAT: Every comma/digit run across all cells is collected when it
	// falls inside the inclusive band; short rows are skipped.
	tables := []entity.Table{
		{Rows: [][]string{
			{"Unit", "Price"},
			{"A", "5,500,000"},
			{"B", "999,999"},       // below band
			{"C", "150,000,000"},   // above band
			{"only one cell here"}, // skipped: row too short
		}},
	}

	got := TablePrices(tables, 1000000, 100000000)
	if !reflect.DeepEqual(got, []int{5500000}) {
		t.Errorf("got %v, want [5500000]", got)
	}
}
