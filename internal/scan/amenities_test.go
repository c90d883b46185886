package scan

import (
	"reflect"
	"strings"
	"testing"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/catalog"
)

func TestAmenities_BasicTitleCasesKeywords(t *testing.T) {
	// WHAT: The basic profile reports matched keywords title-cased,
	// deduplicated, and sorted.
	cat := catalog.Default()
	p := ProfileFor(constants.ProfileBasic)

	// Matching is substring containment, so "parking" also hits the
	// shorter "park" keyword.
	text := "Enjoy the swimming pool, GYM and covered parking. The gym is open 24/7."
	got := Amenities(text, p, cat)
	want := []string{"Gym", "Park", "Parking", "Swimming Pool"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAmenities_DiagnosticCapturesContext(t *testing.T) {
	// WHAT: The diagnostic profile captures a trimmed context window
	// around the first occurrence of each keyword.
	cat := catalog.Default()
	p := ProfileFor(constants.ProfileDiagnostic)

	text := "Residents love the rooftop swimming pool with a sunset view."
	got := Amenities(text, p, cat)
	if len(got) != 1 {
		t.Fatalf("got %d entries %v, want 1", len(got), got)
	}
	if !strings.Contains(got[0], "swimming pool") {
		t.Errorf("window %q should contain the keyword", got[0])
	}
	if got[0] != strings.TrimSpace(got[0]) {
		t.Errorf("window %q should be trimmed", got[0])
	}
}

func TestAmenities_Idempotent(t *testing.T) {
	// WHAT: Scanning the same text twice yields identical results.
	// WHY: The scan is a pure function; output must not depend on any
	// accumulated state.
	cat := catalog.Default()
	text := "gym, garden, gym, garden, parking"

	for _, name := range []constants.ExtractionProfile{constants.ProfileBasic, constants.ProfileDiagnostic} {
		p := ProfileFor(name)
		first := Amenities(text, p, cat)
		second := Amenities(text, p, cat)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated scans differ: %v vs %v", name, first, second)
		}
	}
}

func TestAmenities_NoMatchesIsEmptyNotNil(t *testing.T) {
	// WHAT: A text with no amenity vocabulary yields an empty set that
	// still serializes as an array.
	cat := catalog.Default()
	got := Amenities("nothing relevant here", ProfileFor(constants.ProfileBasic), cat)
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", got)
	}
}

func TestOffers_KeepsAllMatchesInOrder(t *testing.T) {
	// WHAT: Offers capture every occurrence per keyword without dedup,
	// preserving document-then-keyword order.
	// The two discount mentions sit far enough apart that their ±50
	// windows cannot swallow each other.
	cat := catalog.Default()
	text := "Launch discount available for early birds only. Visit our sales office in Gulberg " +
		"for a personal tour of the model apartments and amenities. Final discount ends soon. Limited time only!"

	got := Offers(text, cat)
	if len(got) != 3 {
		t.Fatalf("got %d offers %v, want 3", len(got), got)
	}
	if !strings.Contains(got[0], "discount available") || !strings.Contains(got[1], "Final discount") {
		t.Errorf("discount matches out of order: %v", got)
	}
	if !strings.Contains(strings.ToLower(got[2]), "limited time") {
		t.Errorf("missing limited time window: %v", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"cable tv", "Cable Tv"},
		{"GYM", "Gym"},
		{"swimming pool", "Swimming Pool"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
