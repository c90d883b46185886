// Package catalog holds the business vocabulary the extraction engine
// matches against: known project names, district literals, amenity and
// offer keywords, and the table-header keyword sets. The matching code
// never hardcodes these; a deployment can swap the whole catalog via a
// YAML file while keeping default behavior unchanged.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NameVariant refines a project name when a qualifier appears in the
// document's filename (e.g. "COMMERCIAL" -> "Pearl One Capital - Commercial").
type NameVariant struct {
	Needle  string `yaml:"needle"`
	Display string `yaml:"display"`
}

// ProjectName is one known project. Needles are matched case-insensitively,
// in catalog order; the first hit wins.
type ProjectName struct {
	Match    string        `yaml:"match"`
	Display  string        `yaml:"display"`
	Aliases  []string      `yaml:"aliases,omitempty"`
	Variants []NameVariant `yaml:"variants,omitempty"`
}

// Catalog is the full keyword knowledge base.
type Catalog struct {
	Developer       string        `yaml:"developer"`
	DefaultLocation string        `yaml:"default_location"`
	Projects        []ProjectName `yaml:"projects"`
	Districts       []string      `yaml:"districts"`

	// AmenityKeywords is the basic-profile vocabulary; FeatureKeywords
	// the diagnostic one. They overlap but are not identical and both
	// orders are fixed.
	AmenityKeywords []string `yaml:"amenity_keywords"`
	FeatureKeywords []string `yaml:"feature_keywords"`
	OfferKeywords   []string `yaml:"offer_keywords"`

	PaymentHeaderKeywords []string `yaml:"payment_header_keywords"`
	UnitHeaderKeywords    []string `yaml:"unit_header_keywords"`
}

// Default returns the built-in catalog. Callers get a fresh copy; the
// returned value may be mutated freely.
func Default() *Catalog {
	return &Catalog{
		Developer:       "ABS Developers",
		DefaultLocation: "Lahore, Pakistan",
		Projects: []ProjectName{
			{
				Match:   "PEARL ONE CAPITAL",
				Display: "Pearl One Capital",
				Variants: []NameVariant{
					{Needle: "COMMERCIAL", Display: "Pearl One Capital - Commercial"},
					{Needle: "RESIDENTIAL", Display: "Pearl One Capital - Residential"},
				},
			},
			{
				Match:   "PEARL ONE COURTYARD",
				Display: "Pearl One Courtyard",
				Aliases: []string{"POC"},
			},
			{
				Match:   "PEARL ONE PREMIUM",
				Display: "Pearl One Premium",
			},
			{
				Match:   "ABS MALL",
				Display: "ABS Mall",
				Variants: []NameVariant{
					{Needle: "RESIDENCY", Display: "ABS Mall & Residency"},
				},
			},
			{
				Match:   "BURJ QUAID",
				Display: "Burj Quaid",
			},
		},
		Districts: []string{
			"Lahore", "Main Boulevard", "DHA", "Gulberg", "Johar Town", "Bahria Town",
		},
		AmenityKeywords: []string{
			"swimming pool", "gym", "fitness center", "parking", "security",
			"playground", "garden", "elevator", "lift", "cctv", "community center",
			"mosque", "shopping", "restaurant", "cafe", "school", "hospital",
			"park", "jogging track", "sports", "cinema", "lobby", "reception",
			"backup generator", "water supply", "internet", "cable tv",
		},
		FeatureKeywords: []string{
			"swimming pool", "gym", "fitness", "parking", "security",
			"elevator", "cctv", "backup", "generator", "water",
			"mosque", "playground", "garden", "park", "community",
			"shopping", "restaurant", "cafe", "cinema", "sports",
		},
		OfferKeywords: []string{
			"discount", "offer", "deal", "special", "limited time",
		},
		PaymentHeaderKeywords: []string{
			"payment", "installment", "schedule", "due", "amount",
		},
		UnitHeaderKeywords: []string{
			"unit", "apartment", "type", "area", "size", "bed", "floor",
		},
	}
}

// Load reads a YAML catalog from path. Fields left empty in the file
// fall back to the built-in defaults, so a partial override is valid.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Catalog) applyDefaults() {
	def := Default()
	if c.Developer == "" {
		c.Developer = def.Developer
	}
	if c.DefaultLocation == "" {
		c.DefaultLocation = def.DefaultLocation
	}
	if len(c.Projects) == 0 {
		c.Projects = def.Projects
	}
	if len(c.Districts) == 0 {
		c.Districts = def.Districts
	}
	if len(c.AmenityKeywords) == 0 {
		c.AmenityKeywords = def.AmenityKeywords
	}
	if len(c.FeatureKeywords) == 0 {
		c.FeatureKeywords = def.FeatureKeywords
	}
	if len(c.OfferKeywords) == 0 {
		c.OfferKeywords = def.OfferKeywords
	}
	if len(c.PaymentHeaderKeywords) == 0 {
		c.PaymentHeaderKeywords = def.PaymentHeaderKeywords
	}
	if len(c.UnitHeaderKeywords) == 0 {
		c.UnitHeaderKeywords = def.UnitHeaderKeywords
	}
}

// MatchProjectName finds the first catalog project whose needle occurs in
// the upper-cased filename or document text. Variants are qualified by
// the filename only. Returns "" when nothing matches.
func (c *Catalog) MatchProjectName(filenameUpper, textUpper string) string {
	for _, p := range c.Projects {
		if !containsAny(filenameUpper, textUpper, p.Match, p.Aliases) {
			continue
		}
		for _, v := range p.Variants {
			if strings.Contains(filenameUpper, v.Needle) {
				return v.Display
			}
		}
		return p.Display
	}
	return ""
}

// MatchProjectNameInText finds the first catalog project whose primary
// needle occurs in the upper-cased document text alone.
func (c *Catalog) MatchProjectNameInText(textUpper string) string {
	for _, p := range c.Projects {
		if strings.Contains(textUpper, p.Match) {
			return p.Display
		}
	}
	return ""
}

// Aliases are short needles (e.g. "POC") and are only trusted in the
// filename, not in body text.
func containsAny(filenameUpper, textUpper, match string, aliases []string) bool {
	if strings.Contains(filenameUpper, match) || strings.Contains(textUpper, match) {
		return true
	}
	for _, a := range aliases {
		if strings.Contains(filenameUpper, a) {
			return true
		}
	}
	return false
}
