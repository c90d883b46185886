package scan

import (
	"testing"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/catalog"
)

func TestNameFromFilename(t *testing.T) {
	// WHAT: Extension stripped, underscores become spaces, edges trimmed.
	tests := []struct {
		in   string
		want string
	}{
		{"Riverside_Phase2.pdf", "Riverside Phase2"},
		{"brochure.txt", "brochure"},
		{"_Pearl_One_.pdf", "Pearl One"},
		{"no_extension", "no extension"},
	}
	for _, tt := range tests {
		if got := NameFromFilename(tt.in); got != tt.want {
			t.Errorf("NameFromFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProjectName_BasicUsesFilenameAndAliases(t *testing.T) {
	// WHAT: The basic profile resolves catalog names from the filename,
	// including short aliases like POC.
	cat := catalog.Default()
	p := ProfileFor(constants.ProfileBasic)

	got := ProjectName("POC_Brochure.pdf", "some unrelated text", p, cat)
	if got != "Pearl One Courtyard" {
		t.Errorf("got %q, want Pearl One Courtyard", got)
	}
}

func TestProjectName_DiagnosticIgnoresFilename(t *testing.T) {
	// WHAT: The diagnostic profile only matches catalog names in the
	// body text; a filename-only hint falls back to the derived name.
	cat := catalog.Default()
	p := ProfileFor(constants.ProfileDiagnostic)

	got := ProjectName("POC_Brochure.pdf", "no known project here", p, cat)
	if got != "POC Brochure" {
		t.Errorf("filename alias must not apply, got %q", got)
	}

	got = ProjectName("whatever.pdf", "Welcome to PEARL ONE CAPITAL tower", p, cat)
	if got != "Pearl One Capital" {
		t.Errorf("text match failed, got %q", got)
	}
}

func TestProjectType_BasicFilenameLed(t *testing.T) {
	// WHAT: Basic typing checks the filename first (COMMERCIAL/MALL), or
	// SHOP in text, then MIXED in text, defaulting residential.
	p := ProfileFor(constants.ProfileBasic)

	tests := []struct {
		filename string
		text     string
		want     constants.ProjectType
	}{
		{"ABS_MALL.pdf", "", constants.Commercial},
		{"tower.pdf", "ground floor shops available", constants.Commercial},
		{"tower.pdf", "a mixed development", constants.MixedUse},
		{"tower.pdf", "quiet living", constants.Residential},
	}
	for _, tt := range tests {
		if got := ProjectType(tt.filename, tt.text, p); got != tt.want {
			t.Errorf("ProjectType(%q, %q) = %q, want %q", tt.filename, tt.text, got, tt.want)
		}
	}
}

func TestProjectType_DiagnosticTextLed(t *testing.T) {
	// WHAT: Diagnostic typing reads only the text and defaults mixed-use.
	// WHY: The same document can type differently under each profile;
	// that divergence is intentional.
	p := ProfileFor(constants.ProfileDiagnostic)

	tests := []struct {
		text string
		want constants.ProjectType
	}{
		{"prime commercial space", constants.Commercial},
		{"residential apartments", constants.Residential},
		{"no type words at all", constants.MixedUse},
	}
	for _, tt := range tests {
		if got := ProjectType("ABS_MALL.pdf", tt.text, p); got != tt.want {
			t.Errorf("ProjectType(text=%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
