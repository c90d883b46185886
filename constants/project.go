package constants

import (
	"strings"
)

// ProjectType classifies a real-estate project.
type ProjectType string

// Stable values (these exact strings appear in serialized records).
const (
	Residential ProjectType = "residential"
	Commercial  ProjectType = "commercial"
	MixedUse    ProjectType = "mixed-use"
)

var allProjectTypes = []ProjectType{
	Residential,
	Commercial,
	MixedUse,
}

func ProjectTypes() []string {
	result := make([]string, len(allProjectTypes))
	for i, t := range allProjectTypes {
		result[i] = string(t)
	}
	return result
}

// CanonicalizeProjectType maps free-form input to a known project type.
// Returns MixedUse and false when the input matches nothing.
func CanonicalizeProjectType(input string) (ProjectType, bool) {
	if input == "" {
		return MixedUse, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]ProjectType{
		"apartments": Residential,
		"housing":    Residential,
		"homes":      Residential,
		"mall":       Commercial,
		"shops":      Commercial,
		"offices":    Commercial,
		"retail":     Commercial,
		"mixed":      MixedUse,
		"mixed use":  MixedUse,
		"mixeduse":   MixedUse,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allProjectTypes {
		if normalized == string(t) {
			return t, true
		}
	}

	return MixedUse, false
}

// DisplayName renders the type the way the diagnostic output spells it
// ("Commercial", "Residential", "Mixed-Use").
func (t ProjectType) DisplayName() string {
	switch t {
	case Commercial:
		return "Commercial"
	case Residential:
		return "Residential"
	case MixedUse:
		return "Mixed-Use"
	default:
		s := string(t)
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
