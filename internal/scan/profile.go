// Package scan derives document-level facts from concatenated brochure
// text: prices, payment-plan parameters, contacts, location, project
// identity, amenities, and special offers. All scanners are pure
// functions of the text (and the keyword catalog); table state never
// feeds them.
package scan

import (
	"regexp"

	"github.com/propintel/brochure-extractor/constants"
)

// Profile selects the thresholds and capture style of a scan. The basic
// and diagnostic profiles deliberately keep distinct numeric bands and
// priority rules; do not unify them.
type Profile struct {
	Name constants.ExtractionProfile

	// Price band. MaxPrice == 0 means unbounded above.
	MinPrice     int
	MaxPrice     int
	ExclusiveMin bool

	// ComputeAverage adds the floor-division average to the price range.
	ComputeAverage bool

	// PricePatterns is the ordered pattern list; submatch 1 is the
	// comma/digit run.
	PricePatterns []*regexp.Regexp

	// DownPaymentPattern captures the percentage preceding
	// down/advance/booking.
	DownPaymentPattern *regexp.Regexp

	// KeepLastDuration keeps the last installment-count match instead of
	// the first, and skips the separate monthly/quarterly captures.
	KeepLastDuration bool

	// AmenityContext is the context-window half-width around an amenity
	// keyword; 0 captures the title-cased keyword itself.
	AmenityContext int

	// FilenameTypePriority classifies the project type from filename
	// keywords before text keywords, defaulting residential. When false
	// the text decides, defaulting mixed-use.
	FilenameTypePriority bool
}

var (
	rePriceRs    = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+)`)
	rePricePKR   = regexp.MustCompile(`(?i)PKR\s*([\d,]+)`)
	rePriceLabel = regexp.MustCompile(`(?i)(?:Price|Total|Amount)[:\s]+([\d,]+)`)
	// The diagnostic label pattern tolerates a missing separator.
	rePriceLabelLoose = regexp.MustCompile(`(?i)(?:Price|Total|Amount)[:\s]*([\d,]+)`)

	reDownStrict = regexp.MustCompile(`(?i)(\d+)%\s*(?:down|advance|booking)`)
	reDownLoose  = regexp.MustCompile(`(?i)(\d+)%?\s*(?:down|advance|booking)`)
)

// ProfileFor returns the scan profile for a named extraction profile.
func ProfileFor(name constants.ExtractionProfile) Profile {
	switch name {
	case constants.ProfileDiagnostic:
		return Profile{
			Name:               constants.ProfileDiagnostic,
			MinPrice:           100000,
			MaxPrice:           1000000000,
			ComputeAverage:     true,
			PricePatterns:      []*regexp.Regexp{rePriceRs, rePricePKR, rePriceLabelLoose},
			DownPaymentPattern: reDownLoose,
			AmenityContext:     30,
		}
	default:
		return Profile{
			Name:                 constants.ProfileBasic,
			MinPrice:             100000,
			ExclusiveMin:         true,
			PricePatterns:        []*regexp.Regexp{rePriceRs, rePricePKR, rePriceLabel},
			DownPaymentPattern:   reDownStrict,
			KeepLastDuration:     true,
			FilenameTypePriority: true,
		}
	}
}

// AcceptPrice applies the profile's price-band invariant.
func (p Profile) AcceptPrice(v int) bool {
	if p.ExclusiveMin {
		if v <= p.MinPrice {
			return false
		}
	} else if v < p.MinPrice {
		return false
	}
	if p.MaxPrice > 0 && v > p.MaxPrice {
		return false
	}
	return true
}
