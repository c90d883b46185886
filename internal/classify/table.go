// Package classify assigns semantic categories to extracted tables and
// maps their rows into typed fragments.
package classify

import (
	"strings"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/catalog"
	"github.com/propintel/brochure-extractor/internal/entity"
)

// Table assigns a semantic category from the header row. Categories are
// tested in fixed priority order: a header matching both keyword sets is
// always a payment schedule. Tables with fewer than two rows carry no
// data and must be rejected before classification.
func Table(t entity.Table, cat *catalog.Catalog) constants.TableCategory {
	header := headerText(t)
	if header == "" {
		return constants.TableOther
	}
	if containsAnyKeyword(header, cat.PaymentHeaderKeywords) {
		return constants.TablePaymentSchedule
	}
	if containsAnyKeyword(header, cat.UnitHeaderKeywords) {
		return constants.TableUnitSpec
	}
	return constants.TableOther
}

// Classifiable reports whether the table has at least one data row
// beyond the header.
func Classifiable(t entity.Table) bool {
	return len(t.Rows) >= 2
}

func headerText(t entity.Table) string {
	h := t.Header()
	if len(h) == 0 {
		return ""
	}
	cells := make([]string, len(h))
	for i, c := range h {
		cells[i] = strings.ToLower(c)
	}
	return strings.Join(cells, " ")
}

func containsAnyKeyword(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
