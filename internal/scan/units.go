package scan

import (
	"regexp"
)

// unitMentionPatterns are descriptor shapes scanned over free text.
// The bedroom pattern captures the count; the rest capture the word as
// it appears.
var unitMentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:BED|BEDROOM|BR)`),
	regexp.MustCompile(`(?i)STUDIO`),
	regexp.MustCompile(`(?i)APARTMENT`),
	regexp.MustCompile(`(?i)SHOP`),
	regexp.MustCompile(`(?i)OFFICE`),
	regexp.MustCompile(`(?i)COMMERCIAL`),
	regexp.MustCompile(`(?i)PENTHOUSE`),
}

// UnitMentions collects unit descriptors mentioned anywhere in the text
// (bedroom counts, "STUDIO", "SHOP", ...), deduplicated and sorted.
// They complement, but never replace, table-derived unit fragments.
func UnitMentions(text string) []string {
	var mentions []string
	for _, pat := range unitMentionPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 && m[1] != "" {
				mentions = append(mentions, m[1])
			} else {
				mentions = append(mentions, m[0])
			}
		}
	}
	return dedupeSorted(mentions)
}
