package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchProjectName_VariantsAndAliases(t *testing.T) {
	// WHAT: First catalog hit wins; variants qualify on the filename
	// only; aliases match in the filename only.
	cat := Default()

	tests := []struct {
		filename, text, want string
	}{
		{"PEARL ONE CAPITAL COMMERCIAL.PDF", "", "Pearl One Capital - Commercial"},
		{"BROCHURE.PDF", "WELCOME TO PEARL ONE CAPITAL", "Pearl One Capital"},
		// The COMMERCIAL qualifier in body text does not trigger the variant.
		{"BROCHURE.PDF", "PEARL ONE CAPITAL COMMERCIAL WING", "Pearl One Capital"},
		{"POC FINAL.PDF", "", "Pearl One Courtyard"},
		// Aliases are filename-only.
		{"BROCHURE.PDF", "VISIT POC TODAY", ""},
		{"ABS MALL RESIDENCY.PDF", "", "ABS Mall & Residency"},
		{"UNKNOWN.PDF", "NOTHING KNOWN HERE", ""},
	}
	for _, tt := range tests {
		if got := cat.MatchProjectName(tt.filename, tt.text); got != tt.want {
			t.Errorf("MatchProjectName(%q, %q) = %q, want %q", tt.filename, tt.text, got, tt.want)
		}
	}
}

func TestMatchProjectNameInText(t *testing.T) {
	cat := Default()
	if got := cat.MatchProjectNameInText("GRAND OPENING OF BURJ QUAID"); got != "Burj Quaid" {
		t.Errorf("got %q", got)
	}
	// Text-only matching ignores aliases.
	if got := cat.MatchProjectNameInText("POC LAUNCH"); got != "" {
		t.Errorf("alias matched in text: %q", got)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	// WHAT: A YAML file overriding some fields keeps the defaults for
	// the rest.
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "developer: Acme Estates\nprojects:\n  - match: RIVERSIDE\n    display: Riverside\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Developer != "Acme Estates" {
		t.Errorf("developer = %q", cat.Developer)
	}
	if len(cat.Projects) != 1 || cat.Projects[0].Display != "Riverside" {
		t.Errorf("projects = %+v", cat.Projects)
	}
	if cat.DefaultLocation != Default().DefaultLocation {
		t.Errorf("default location should fall back, got %q", cat.DefaultLocation)
	}
	if len(cat.AmenityKeywords) == 0 || len(cat.PaymentHeaderKeywords) == 0 {
		t.Error("keyword sets should fall back to defaults")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}
