package scan

import (
	"regexp"
	"strings"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/catalog"
)

var (
	// Basic: preposition followed by a capitalized phrase; the whole
	// match (preposition included) is the location.
	reLocBasic = regexp.MustCompile(`(?i)(?:located in|situated in|at)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

	// Diagnostic: looser phrase capture up to the next delimiter; only
	// the captured phrase is kept.
	reLocDiagnostic = regexp.MustCompile(`(?i)(?:located in|at|near)\s+([A-Za-z\s,]+?)(?:\.|,|\n)`)
)

// Location discovers the project location. The preposition-led capture
// is tried first; the basic profile then falls back to the catalog's
// district literals; both profiles end at the catalog default.
func Location(text string, p Profile, cat *catalog.Catalog) string {
	if p.Name == constants.ProfileDiagnostic {
		if m := reLocDiagnostic.FindStringSubmatch(text); m != nil {
			if loc := strings.TrimSpace(m[1]); loc != "" {
				return loc
			}
		}
		return cat.DefaultLocation
	}

	if m := reLocBasic.FindString(text); m != "" {
		return m
	}
	for _, district := range cat.Districts {
		pat := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(district))
		if m := pat.FindString(text); m != "" {
			return m
		}
	}
	return cat.DefaultLocation
}
