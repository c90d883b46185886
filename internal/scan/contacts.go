package scan

import (
	"regexp"
	"sort"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// Phone shapes are applied independently; the same number may match more
// than one shape, so results only deduplicate at the set boundary.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+92[- ]?\d{3}[- ]?\d{7}`),
	regexp.MustCompile(`\d{4}[- ]?\d{7}`),
	regexp.MustCompile(`\d{3}[- ]?\d{3}[- ]?\d{4}`),
}

var (
	reEmail   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reWebsite = regexp.MustCompile(`(?:www\.|https?://)[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// Contacts discovers phones, emails, and the first website mention.
// Phones and emails are kept verbatim, deduplicated, and sorted
// lexicographically for deterministic output.
func Contacts(text string) entity.ContactInfo {
	var c entity.ContactInfo

	var phones []string
	for _, pat := range phonePatterns {
		phones = append(phones, pat.FindAllString(text, -1)...)
	}
	c.Phones = dedupeSorted(phones)
	c.Emails = dedupeSorted(reEmail.FindAllString(text, -1))
	c.Website = reWebsite.FindString(text)
	return c
}

// dedupeSorted never returns nil: empty sets serialize as [] so the
// array fields are always present in output.
func dedupeSorted(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
