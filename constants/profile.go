package constants

import "strings"

// ExtractionProfile selects which extraction behavior a scan uses.
// The two profiles intentionally keep distinct thresholds and priority
// rules; downstream consumers depend on the specific behavior of each.
type ExtractionProfile string

const (
	// ProfileBasic is the catalog-building mode: filename-led project
	// typing, title-cased amenity keywords, open-ended price band.
	ProfileBasic ExtractionProfile = "basic"

	// ProfileDiagnostic is the analysis mode: text-led project typing,
	// amenity context windows, bounded price band, contact and offer
	// discovery, raw table previews.
	ProfileDiagnostic ExtractionProfile = "diagnostic"
)

// CanonicalizeProfile maps free-form input to a profile, defaulting to basic.
func CanonicalizeProfile(input string) (ExtractionProfile, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "basic", "":
		return ProfileBasic, input != ""
	case "diagnostic", "analysis", "advanced":
		return ProfileDiagnostic, true
	default:
		return ProfileBasic, false
	}
}
