package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/propintel/brochure-extractor/internal/entity"
)

var (
	reDigit     = regexp.MustCompile(`\d`)
	reInt       = regexp.MustCompile(`\d+`)
	reNumberRun = regexp.MustCompile(`[\d,]+`)
	reBedrooms  = regexp.MustCompile(`(?i)(\d+)\s*(?:BED|BR)`)
	reArea      = regexp.MustCompile(`(?i)(\d+(?:,\d+)?)\s*(?:sq\.?\s*ft|sqft|marla)`)
)

// cellRule classifies one payment-schedule cell. Rules are evaluated
// top-down; the first matching rule consumes the cell.
type cellRule struct {
	field string
	match func(cell string) bool
	apply func(inst *entity.Installment, cell string)
}

// installmentRules: percentage, then amount (thousands separator or
// length > 4), then bare index, then description for digit-free cells.
var installmentRules = []cellRule{
	{
		field: "percentage",
		match: func(c string) bool { return hasDigit(c) && strings.Contains(c, "%") },
		apply: func(inst *entity.Installment, c string) {
			if v, ok := firstInt(c); ok {
				inst.Percentage = entity.IntPtr(v)
			}
		},
	},
	{
		field: "amount",
		match: func(c string) bool { return hasDigit(c) && (strings.Contains(c, ",") || len(c) > 4) },
		apply: func(inst *entity.Installment, c string) {
			if v, ok := firstAmount(c); ok {
				inst.Amount = entity.IntPtr(v)
			}
		},
	},
	{
		field: "number",
		match: hasDigit,
		apply: func(inst *entity.Installment, c string) {
			if v, ok := firstInt(c); ok {
				inst.Number = entity.IntPtr(v)
			}
		},
	},
	{
		field: "description",
		match: func(c string) bool { return !hasDigit(c) },
		apply: func(inst *entity.Installment, c string) {
			inst.Description = strings.TrimSpace(c)
		},
	},
}

// InstallmentRuleFields lists the rule set's field names in evaluation
// order, for tests exercising each rule in isolation.
func InstallmentRuleFields() []string {
	fields := make([]string, len(installmentRules))
	for i, r := range installmentRules {
		fields[i] = r.field
	}
	return fields
}

// ClassifyCell returns the rule field name a single cell resolves to,
// or "" for an empty cell.
func ClassifyCell(cell string) string {
	if cell == "" {
		return ""
	}
	for _, r := range installmentRules {
		if r.match(cell) {
			return r.field
		}
	}
	return ""
}

// MapInstallmentRow converts one payment-schedule row into an
// installment fragment. Each non-empty cell is classified independently;
// when a row yields multiple cells of the same kind, the later cell
// overwrites the earlier. Rows contributing no classified value are
// dropped.
func MapInstallmentRow(row []string) (entity.Installment, bool) {
	var inst entity.Installment
	if entity.RowIsBlank(row) {
		return inst, false
	}
	for _, cell := range row {
		if cell == "" {
			continue
		}
		for _, r := range installmentRules {
			if r.match(cell) {
				r.apply(&inst, cell)
				break
			}
		}
	}
	if inst.Empty() {
		return inst, false
	}
	return inst, true
}

// MapUnitRowRaw maps a unit-spec row positionally against the header,
// producing a free-form header->value mapping. Consumed by the
// diagnostic flow.
func MapUnitRowRaw(row, header []string, page int) (entity.UnitType, bool) {
	unit := entity.UnitType{Page: page}
	if entity.RowIsBlank(row) {
		return unit, false
	}
	raw := make(map[string]string)
	for i, cell := range row {
		if cell == "" || i >= len(header) {
			continue
		}
		key := strings.TrimSpace(strings.ToLower(header[i]))
		if key == "" {
			continue
		}
		raw[key] = cell
	}
	if len(raw) == 0 {
		return unit, false
	}
	unit.RawData = raw
	return unit, true
}

// MapUnitRowTyped pattern-matches a unit-spec row into typed fields.
// Consumed by the basic flow. A bedroom hit also sets Type to the cell
// text; area values have thousands separators stripped; a price needs a
// comma/digit run exceeding 1,000,000.
func MapUnitRowTyped(row []string, page int) (entity.UnitType, bool) {
	unit := entity.UnitType{Page: page}
	if entity.RowIsBlank(row) {
		return unit, false
	}
	for _, cell := range row {
		if cell == "" {
			continue
		}
		if m := reBedrooms.FindStringSubmatch(cell); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				unit.Bedrooms = entity.IntPtr(v)
				unit.Type = strings.TrimSpace(cell)
			}
		}
		if m := reArea.FindStringSubmatch(cell); m != nil {
			unit.Area = strings.ReplaceAll(m[1], ",", "")
		}
		if v, ok := firstAmount(cell); ok && v > 1000000 {
			unit.Price = entity.IntPtr(v)
		}
	}
	if unit.Empty() {
		return unit, false
	}
	return unit, true
}

// TablePrices collects every comma/digit run across all table cells that
// falls inside [min, max]. Feeds the unit-price bag; never the summary
// price range.
func TablePrices(tables []entity.Table, min, max int) []int {
	var prices []int
	for _, t := range tables {
		for _, row := range t.Rows {
			if len(row) < 2 {
				continue
			}
			for _, cell := range row {
				if cell == "" {
					continue
				}
				for _, run := range reNumberRun.FindAllString(cell, -1) {
					v, err := strconv.Atoi(strings.ReplaceAll(run, ",", ""))
					if err != nil {
						continue
					}
					if v >= min && v <= max {
						prices = append(prices, v)
					}
				}
			}
		}
	}
	return prices
}

func hasDigit(s string) bool { return reDigit.MatchString(s) }

func firstInt(s string) (int, bool) {
	m := reInt.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

func firstAmount(s string) (int, bool) {
	m := reNumberRun.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, false
	}
	return v, true
}
