package scan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/propintel/brochure-extractor/internal/catalog"
)

// Amenities scans the lower-cased text for the profile's amenity
// vocabulary. The diagnostic profile captures a bounded context window
// around the first occurrence of each keyword; the basic profile
// captures the title-cased keyword itself. The result is deduplicated
// and sorted, so repeated scans of the same text agree regardless of
// vocabulary order.
func Amenities(text string, p Profile, cat *catalog.Catalog) []string {
	textLower := strings.ToLower(text)

	if p.AmenityContext > 0 {
		return featureWindows(textLower, cat.FeatureKeywords, p.AmenityContext)
	}

	var found []string
	for _, kw := range cat.AmenityKeywords {
		if strings.Contains(textLower, kw) {
			found = append(found, TitleCase(kw))
		}
	}
	return dedupeSorted(found)
}

func featureWindows(textLower string, keywords []string, window int) []string {
	var found []string
	for _, kw := range keywords {
		if !strings.Contains(textLower, kw) {
			continue
		}
		pat := contextPattern(kw, window)
		if m := pat.FindString(textLower); m != "" {
			found = append(found, strings.TrimSpace(m))
		}
	}
	return dedupeSorted(found)
}

// Offers captures a wider context window around every occurrence of
// each promotional keyword. Matches keep document order and are not
// deduplicated.
func Offers(text string, cat *catalog.Catalog) []string {
	var offers []string
	for _, kw := range cat.OfferKeywords {
		pat := contextPattern(kw, 50)
		for _, m := range pat.FindAllString(text, -1) {
			offers = append(offers, strings.TrimSpace(m))
		}
	}
	return offers
}

func contextPattern(keyword string, window int) *regexp.Regexp {
	w := "{0," + strconv.Itoa(window) + "}"
	return regexp.MustCompile(`(?is).` + w + regexp.QuoteMeta(keyword) + `.` + w)
}

// TitleCase upper-cases the first letter of each space-separated word
// and lower-cases the rest ("cable tv" -> "Cable Tv").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
