package scan

import (
	"reflect"
	"testing"

	"github.com/propintel/brochure-extractor/constants"
)

func TestPrices_ParsesCommaSeparated(t *testing.T) {
	// WHAT: "Rs. 1,234,567" parses to 1234567 under both profiles.
	// WHY: Thousands separators must be stripped before the band check.
	text := "Starting from Rs. 1,234,567 only"

	for _, name := range []constants.ExtractionProfile{constants.ProfileBasic, constants.ProfileDiagnostic} {
		got := Prices(text, ProfileFor(name))
		if len(got) != 1 || got[0] != 1234567 {
			t.Errorf("%s: got %v, want [1234567]", name, got)
		}
	}
}

func TestPrices_BasicBandIsExclusive(t *testing.T) {
	// WHAT: The basic band excludes exactly 100,000 and has no upper bound.
	// WHY: The two profiles keep distinct band semantics; the basic
	// minimum is exclusive while the diagnostic minimum is inclusive.
	p := ProfileFor(constants.ProfileBasic)

	if got := Prices("Rs. 100,000", p); len(got) != 0 {
		t.Errorf("boundary value should be excluded, got %v", got)
	}
	if got := Prices("Rs. 100,001", p); len(got) != 1 {
		t.Errorf("boundary+1 should be included, got %v", got)
	}
	if got := Prices("Rs. 2,000,000,000", p); len(got) != 1 {
		t.Errorf("basic band is unbounded above, got %v", got)
	}
}

func TestPrices_DiagnosticBandIsInclusive(t *testing.T) {
	// WHAT: The diagnostic band includes both endpoints and caps at 1e9.
	p := ProfileFor(constants.ProfileDiagnostic)

	if got := Prices("Rs. 100,000", p); len(got) != 1 {
		t.Errorf("lower boundary should be included, got %v", got)
	}
	if got := Prices("Rs. 1,000,000,000", p); len(got) != 1 {
		t.Errorf("upper boundary should be included, got %v", got)
	}
	if got := Prices("Rs. 1,000,000,001", p); len(got) != 0 {
		t.Errorf("above upper boundary should be excluded, got %v", got)
	}
}

func TestPrices_RejectsBelowBand(t *testing.T) {
	// WHAT: Small amounts like fee lines never enter the bag.
	text := "Processing fee Rs. 50,000 applies"

	for _, name := range []constants.ExtractionProfile{constants.ProfileBasic, constants.ProfileDiagnostic} {
		if got := Prices(text, ProfileFor(name)); len(got) != 0 {
			t.Errorf("%s: got %v, want empty", name, got)
		}
	}
}

func TestPrices_PatternVariants(t *testing.T) {
	// WHAT: PKR and labeled amounts are captured alongside Rs amounts.
	text := "PKR 5,500,000 or Price: 6,000,000"
	got := Prices(text, ProfileFor(constants.ProfileBasic))
	want := []int{5500000, 6000000}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRange_EmptyBagHasNoFields(t *testing.T) {
	// WHAT: An empty bag produces a range with all fields absent.
	// WHY: Absent and zero must stay distinguishable in output.
	r := Range(nil, ProfileFor(constants.ProfileDiagnostic))
	if r.Min != nil || r.Max != nil || r.Average != nil {
		t.Errorf("want all nil, got %+v", r)
	}
}

func TestRange_AverageOnlyForDiagnostic(t *testing.T) {
	// WHAT: Average is floor division and only the diagnostic profile
	// computes it.
	prices := []int{100, 101}

	basic := Range(prices, ProfileFor(constants.ProfileBasic))
	if basic.Average != nil {
		t.Errorf("basic range should not carry an average, got %d", *basic.Average)
	}

	diag := Range(prices, ProfileFor(constants.ProfileDiagnostic))
	if diag.Average == nil || *diag.Average != 100 {
		t.Errorf("want floor average 100, got %+v", diag.Average)
	}
	if *diag.Min != 100 || *diag.Max != 101 {
		t.Errorf("want min 100 max 101, got %d %d", *diag.Min, *diag.Max)
	}
}
