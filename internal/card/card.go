// Package card builds the view model of a single gallery card. Rendering is
// split in two passes: Render lays the card out from data alone, and Annotate
// runs afterwards, once computed styles can be read, to pick label colours.
package card

import (
	"strings"

	"github.com/alexisbeaulieu97/swatchbook/internal/css"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
)

const (
	// ScopePrefix prefixes the class every card's stylesheet is scoped to.
	ScopePrefix = "swatchbook-var--"
	// MaxFontSamples caps the font family samples shown per card.
	MaxFontSamples = 2
	// BodySampleText is rendered in the variation's body font.
	BodySampleText = "Body sample AaBbCc"
)

// View is everything a backend needs to draw one card.
type View struct {
	Index      int
	Slug       string
	ScopeClass string
	Title      string
	Current    bool
	// CSS is the variation stylesheet scoped to ScopeClass; empty when the
	// variation declares none.
	CSS string
	// Variables are the custom properties CSS declares.
	Variables  css.Variables
	Swatches   []Swatch
	Fonts      []FontSample
	BodySample *FontSample
}

// Swatch is one palette entry.
type Swatch struct {
	Slug       string
	Label      string
	Background string
	// LabelColor is filled in by Annotate.
	LabelColor string
}

// FontSample is a line of text set in a font family.
type FontSample struct {
	Text       string
	FontFamily string
}

// HasFonts reports whether the card shows a fonts section at all.
func (v View) HasFonts() bool {
	return len(v.Fonts) > 0 || v.BodySample != nil
}

// Render lays out the card for v at position index. The card is marked
// current when its normalized slug equals activeSlug.
func Render(v variation.Variation, index int, activeSlug string) View {
	slug := v.Key()
	scope := ScopePrefix + slug
	scoped := css.Scope(v.Config.Styles.CSS, scope)

	view := View{
		Index:      index,
		Slug:       slug,
		ScopeClass: scope,
		Title:      v.DisplayTitle(),
		Current:    activeSlug != "" && slug == variation.NormalizeSlug(activeSlug),
		CSS:        scoped,
		Variables:  css.ParseVariables(scoped),
	}

	for _, entry := range v.Config.Settings.Color.Palette {
		background := entry.Color
		if background == "" {
			background = "transparent"
		}
		label := entry.Label()
		view.Swatches = append(view.Swatches, Swatch{
			Slug:       strings.ToLower(label),
			Label:      label,
			Background: background,
		})
	}

	families := v.Config.Settings.Typography.FontFamilies
	if len(families) > MaxFontSamples {
		families = families[:MaxFontSamples]
	}
	for _, family := range families {
		view.Fonts = append(view.Fonts, FontSample{Text: family.Label(), FontFamily: family.FontFamily})
	}
	if body := v.Config.Styles.Typography.FontFamily; body != "" {
		view.BodySample = &FontSample{Text: BodySampleText, FontFamily: body}
	}
	return view
}

// Gallery renders a card per variation in order. An empty list renders
// nothing.
func Gallery(variations []variation.Variation, activeSlug string) []View {
	views := make([]View, 0, len(variations))
	for i, v := range variations {
		views = append(views, Render(v, i, activeSlug))
	}
	return views
}
