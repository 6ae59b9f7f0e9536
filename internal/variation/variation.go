// Package variation models theme style variations: a named palette, a set of
// font families and a block of raw CSS. Documents are normalized once when
// decoded so that render code can read every field without nil checks.
package variation

import (
	"regexp"
	"strings"
)

// Source records where a variation was discovered.
type Source string

const (
	SourceTheme  Source = "theme"
	SourceExport Source = "export"
	SourceOther  Source = "other"
)

// ParseSource maps a free-form origin onto a Source.
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceTheme:
		return SourceTheme
	case SourceExport:
		return SourceExport
	default:
		return SourceOther
	}
}

// Variation is one selectable site-wide style preset.
type Variation struct {
	Slug  string
	Title string
	// Source is the normalized origin; SourcePath keeps the file or label it
	// came from for diagnostics.
	Source     Source
	SourcePath string
	Config     StyleConfig
	// Repairs lists structural problems fixed while decoding. Issues lists
	// entries that are incomplete but were kept.
	Repairs []Issue
	Issues  []Issue
}

// StyleConfig is the subset of a global styles document the gallery reads.
type StyleConfig struct {
	Settings Settings
	Styles   Styles
	// Raw is the repaired document as decoded, sent verbatim to apply sinks.
	Raw map[string]any
}

// Settings groups the settings.* section.
type Settings struct {
	Color      ColorSettings
	Typography TypographySettings
}

// ColorSettings groups settings.color.
type ColorSettings struct {
	Palette []PaletteEntry
}

// TypographySettings groups settings.typography.
type TypographySettings struct {
	FontFamilies []FontFamily
}

// Styles groups the styles.* section.
type Styles struct {
	CSS        string
	Typography StyleTypography
}

// StyleTypography groups styles.typography.
type StyleTypography struct {
	FontFamily string
}

// PaletteEntry is a semantic slug bound to a literal colour or a var() reference.
type PaletteEntry struct {
	Slug  string `yaml:"slug" validate:"required"`
	Name  string `yaml:"name"`
	Color string `yaml:"color" validate:"required"`
}

// Label is what a swatch shows for the entry.
func (p PaletteEntry) Label() string {
	if p.Slug != "" {
		return p.Slug
	}
	return p.Name
}

// FontFamily is one declared font family.
type FontFamily struct {
	Name       string `yaml:"name"`
	Slug       string `yaml:"slug"`
	FontFamily string `yaml:"fontFamily" validate:"required"`
}

// Label is the sample text shown for the family.
func (f FontFamily) Label() string {
	switch {
	case f.Name != "":
		return f.Name
	case f.Slug != "":
		return f.Slug
	default:
		return "Font"
	}
}

var slugJunk = regexp.MustCompile(`[^a-z0-9-_]+`)

// NormalizeSlug lowercases s, collapses every run of characters outside
// [a-z0-9-_] into a hyphen and trims hyphens from both ends.
func NormalizeSlug(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = slugJunk.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Key is the identity of the variation: its normalized slug, falling back to
// the title and finally to "variation".
func (v Variation) Key() string {
	for _, candidate := range []string{v.Slug, v.Title} {
		if candidate != "" {
			return NormalizeSlug(candidate)
		}
	}
	return "variation"
}

// DisplayTitle is the title, or the slug when the title is empty.
func (v Variation) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return v.Slug
}
