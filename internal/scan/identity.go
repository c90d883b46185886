package scan

import (
	"path/filepath"
	"strings"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/catalog"
)

// ProjectName resolves the project name: known catalog names first, then
// a filename-derived fallback (extension stripped, separators replaced
// with spaces). The basic profile also consults the filename and name
// variants; the diagnostic profile matches body text only.
func ProjectName(filename, text string, p Profile, cat *catalog.Catalog) string {
	fallback := NameFromFilename(filename)

	if p.Name == constants.ProfileDiagnostic {
		if name := cat.MatchProjectNameInText(strings.ToUpper(text)); name != "" {
			return name
		}
		return fallback
	}

	if name := cat.MatchProjectName(strings.ToUpper(fallback), strings.ToUpper(text)); name != "" {
		return name
	}
	return fallback
}

// NameFromFilename derives a display name from a document filename.
func NameFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}

// ProjectType decides the project type. The diagnostic policy is
// text-led: COMMERCIAL wins, then RESIDENTIAL, defaulting mixed-use.
// The basic policy is filename-led: COMMERCIAL or MALL in the filename
// (or SHOP in the text) wins, then MIXED in the text, defaulting
// residential. Both policies are preserved as-is.
func ProjectType(filename, text string, p Profile) constants.ProjectType {
	textUpper := strings.ToUpper(text)

	if p.FilenameTypePriority {
		nameUpper := strings.ToUpper(filename)
		if strings.Contains(nameUpper, "COMMERCIAL") ||
			strings.Contains(nameUpper, "MALL") ||
			strings.Contains(textUpper, "SHOP") {
			return constants.Commercial
		}
		if strings.Contains(textUpper, "MIXED") {
			return constants.MixedUse
		}
		return constants.Residential
	}

	if strings.Contains(textUpper, "COMMERCIAL") {
		return constants.Commercial
	}
	if strings.Contains(textUpper, "RESIDENTIAL") {
		return constants.Residential
	}
	return constants.MixedUse
}
