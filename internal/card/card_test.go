package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/colour"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
)

func oceanVariation() variation.Variation {
	return variation.Variation{
		Slug:  "Ocean Blue",
		Title: "Ocean",
		Config: variation.StyleConfig{
			Settings: variation.Settings{
				Color: variation.ColorSettings{Palette: []variation.PaletteEntry{
					{Slug: "base", Color: "#ffffff"},
					{Slug: "Contrast", Color: "var(--ink)"},
					{Name: "Unnamed"},
				}},
				Typography: variation.TypographySettings{FontFamilies: []variation.FontFamily{
					{Name: "Inter", FontFamily: "Inter, sans-serif"},
					{Slug: "mono", FontFamily: "monospace"},
					{Name: "Third", FontFamily: "serif"},
				}},
			},
			Styles: variation.Styles{
				CSS:        ":root{--ink: #111111; --text-on-light: #101010;}",
				Typography: variation.StyleTypography{FontFamily: "Georgia, serif"},
			},
		},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	view := Render(oceanVariation(), 4, "")

	assert.Equal(t, 4, view.Index)
	assert.Equal(t, "ocean-blue", view.Slug)
	assert.Equal(t, "swatchbook-var--ocean-blue", view.ScopeClass)
	assert.Equal(t, "Ocean", view.Title)
	assert.False(t, view.Current)
	assert.Equal(t, ".swatchbook-var--ocean-blue{--ink: #111111; --text-on-light: #101010;}", view.CSS)
	assert.Equal(t, "#111111", view.Variables["ink"])

	require.Len(t, view.Swatches, 3)
	assert.Equal(t, Swatch{Slug: "base", Label: "base", Background: "#ffffff"}, view.Swatches[0])
	assert.Equal(t, Swatch{Slug: "contrast", Label: "Contrast", Background: "var(--ink)"}, view.Swatches[1])
	assert.Equal(t, Swatch{Slug: "unnamed", Label: "Unnamed", Background: "transparent"}, view.Swatches[2])

	require.Len(t, view.Fonts, MaxFontSamples)
	assert.Equal(t, FontSample{Text: "Inter", FontFamily: "Inter, sans-serif"}, view.Fonts[0])
	assert.Equal(t, FontSample{Text: "mono", FontFamily: "monospace"}, view.Fonts[1])
	require.NotNil(t, view.BodySample)
	assert.Equal(t, FontSample{Text: BodySampleText, FontFamily: "Georgia, serif"}, *view.BodySample)
	assert.True(t, view.HasFonts())
}

func TestRenderMarksCurrentByNormalizedSlug(t *testing.T) {
	t.Parallel()

	assert.True(t, Render(oceanVariation(), 0, "ocean-blue").Current)
	assert.True(t, Render(oceanVariation(), 0, "Ocean Blue").Current)
	assert.False(t, Render(oceanVariation(), 0, "ocean").Current)
}

func TestRenderMinimalVariation(t *testing.T) {
	t.Parallel()

	view := Render(variation.Variation{}, 0, "variation")

	assert.Equal(t, "variation", view.Slug)
	assert.Empty(t, view.CSS)
	assert.Empty(t, view.Swatches)
	assert.Empty(t, view.Fonts)
	assert.Nil(t, view.BodySample)
	assert.False(t, view.HasFonts())
	assert.True(t, view.Current)
}

func TestGallery(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Gallery(nil, "x"))

	views := Gallery([]variation.Variation{{Slug: "a"}, {Slug: "b"}}, "b")
	require.Len(t, views, 2)
	assert.Equal(t, 1, views[1].Index)
	assert.False(t, views[0].Current)
	assert.True(t, views[1].Current)
}

type fakeReader struct {
	props     map[string]string
	card      string
	swatches  []string
	panicOnBg bool
}

func (f fakeReader) CustomProperty(_ View, name string) string { return f.props[name] }
func (f fakeReader) CardBackground(View) string                { return f.card }
func (f fakeReader) SwatchBackground(_ View, i int) string {
	if f.panicOnBg {
		panic("layout not ready")
	}
	return f.swatches[i]
}

func viewWithSwatches(n int) View {
	v := View{}
	for i := 0; i < n; i++ {
		v.Swatches = append(v.Swatches, Swatch{Slug: "s"})
	}
	return v
}

func TestAnnotateBlackSwatchGetsBrightLabel(t *testing.T) {
	t.Parallel()

	reader := fakeReader{
		props:    map[string]string{TextOnLightProperty: "#1a1a1a", TextOnDarkProperty: " #f5f5f5 "},
		swatches: []string{"#000000", "#ffffff"},
	}

	out := Annotate(viewWithSwatches(2), reader, nil)

	assert.Equal(t, "#f5f5f5", out.Swatches[0].LabelColor)
	assert.Equal(t, "#1a1a1a", out.Swatches[1].LabelColor)
}

func TestAnnotateDefaultsAndCompositing(t *testing.T) {
	t.Parallel()

	reader := fakeReader{
		card: "#000000",
		// A nearly clear white swatch over a black card is effectively black.
		swatches: []string{"rgba(255, 255, 255, 0.05)", "rgba(255,255,255,0.95)", "not a colour"},
	}
	view := viewWithSwatches(3)

	out := Annotate(view, reader, colour.NamedResolver{})

	assert.Equal(t, defaultTextOnDark, out.Swatches[0].LabelColor)
	assert.Equal(t, defaultTextOnLight, out.Swatches[1].LabelColor)
	// An unreadable swatch is treated as the light text colour itself, so the
	// other candidate contrasts more.
	assert.Equal(t, defaultTextOnDark, out.Swatches[2].LabelColor)
	assert.Empty(t, view.Swatches[0].LabelColor, "input view is not mutated")
}

func TestAnnotateTieFavoursTextOnDark(t *testing.T) {
	t.Parallel()

	reader := fakeReader{
		props:    map[string]string{TextOnLightProperty: "#777777", TextOnDarkProperty: "#777"},
		swatches: []string{"#ffffff"},
	}

	out := Annotate(viewWithSwatches(1), reader, nil)
	assert.Equal(t, "#777", out.Swatches[0].LabelColor)
}

func TestAnnotateSurvivesPanickingReader(t *testing.T) {
	t.Parallel()

	view := viewWithSwatches(2)
	out := Annotate(view, fakeReader{panicOnBg: true}, nil)

	require.Len(t, out.Swatches, 2)
	assert.Empty(t, out.Swatches[0].LabelColor)
}

func TestVariableReader(t *testing.T) {
	t.Parallel()

	v := oceanVariation()
	v.Config.Settings.Color.Palette = append(v.Config.Settings.Color.Palette,
		variation.PaletteEntry{Slug: "text-on-dark", Color: "#fafafa"},
		variation.PaletteEntry{Slug: "accent", Color: "var(--wp--preset--color--base)"},
		variation.PaletteEntry{Slug: "ghost", Color: "var(--nowhere)"},
	)
	view := Render(v, 0, "")
	reader := VariableReader{}

	assert.Equal(t, "#101010", reader.CustomProperty(view, TextOnLightProperty))
	assert.Equal(t, "#fafafa", reader.CustomProperty(view, TextOnDarkProperty))
	assert.Empty(t, reader.CustomProperty(view, "--missing"))
	assert.Equal(t, "#ffffff", reader.CardBackground(view))
	assert.Equal(t, "#000", VariableReader{Background: "#000"}.CardBackground(view))

	assert.Equal(t, "#111111", reader.SwatchBackground(view, 1))
	assert.Equal(t, "#ffffff", reader.SwatchBackground(view, 4))
	assert.Equal(t, "var(--nowhere)", reader.SwatchBackground(view, 5))
	assert.Empty(t, reader.SwatchBackground(view, 99))

	out := Annotate(view, reader, colour.NamedResolver{})
	// #111111 is dark: the bright text-on-dark colour wins.
	assert.Equal(t, "#fafafa", out.Swatches[1].LabelColor)
	// White base takes the dark text-on-light colour.
	assert.Equal(t, "#101010", out.Swatches[0].LabelColor)
}
