package card

import (
	"strings"

	"github.com/alexisbeaulieu97/swatchbook/internal/colour"
	"github.com/alexisbeaulieu97/swatchbook/internal/css"
)

const (
	// TextOnLightProperty names the text colour meant for light surfaces.
	TextOnLightProperty = "--text-on-light"
	// TextOnDarkProperty names the text colour meant for dark surfaces.
	TextOnDarkProperty = "--text-on-dark"

	defaultTextOnLight = "#000"
	defaultTextOnDark  = "#fff"
)

// StyleReader reads computed styles of a card once it has been laid out.
type StyleReader interface {
	CustomProperty(view View, name string) string
	CardBackground(view View) string
	SwatchBackground(view View, index int) string
}

// Annotate sets every swatch's LabelColor to whichever of the card's
// text-on-light and text-on-dark colours contrasts more with the swatch.
// Translucent swatches are first composited over the card background. Ties go
// to text-on-dark. If anything goes wrong the labels are left unset.
func Annotate(view View, reader StyleReader, resolver colour.Resolver) (out View) {
	out = view
	out.Swatches = append([]Swatch(nil), view.Swatches...)
	defer func() {
		if recover() != nil {
			out = view
		}
	}()

	lightText := strings.TrimSpace(reader.CustomProperty(view, TextOnLightProperty))
	if lightText == "" {
		lightText = defaultTextOnLight
	}
	darkText := strings.TrimSpace(reader.CustomProperty(view, TextOnDarkProperty))
	if darkText == "" {
		darkText = defaultTextOnDark
	}
	lightRGB := colour.ParseOr(lightText, resolver, colour.Black.Opaque()).RGB()
	darkRGB := colour.ParseOr(darkText, resolver, colour.Black.Opaque()).RGB()
	cardRGB := colour.ParseOr(reader.CardBackground(view), resolver, colour.White.Opaque()).RGB()

	for i := range out.Swatches {
		var bg colour.RGB
		parsed, ok := colour.Parse(reader.SwatchBackground(view, i), resolver)
		switch {
		case !ok:
			bg = lightRGB
		case parsed.Translucent():
			bg = colour.CompositeOver(parsed, cardRGB)
		default:
			bg = parsed.RGB()
		}

		if colour.ContrastRatio(bg, darkRGB) >= colour.ContrastRatio(bg, lightRGB) {
			out.Swatches[i].LabelColor = darkText
		} else {
			out.Swatches[i].LabelColor = lightText
		}
	}
	return out
}

// AnnotateAll runs Annotate over every card.
func AnnotateAll(views []View, reader StyleReader, resolver colour.Resolver) []View {
	out := make([]View, len(views))
	for i, v := range views {
		out[i] = Annotate(v, reader, resolver)
	}
	return out
}

const presetColorPrefix = "wp--preset--color--"

// VariableReader computes styles without a browser: custom properties come
// from the card's own scoped stylesheet, then from palette entries of the same
// slug, and preset colour references resolve against the palette.
type VariableReader struct {
	// Background is the card surface colour; white when empty.
	Background string
}

// CustomProperty implements StyleReader.
func (r VariableReader) CustomProperty(view View, name string) string {
	key := strings.TrimPrefix(name, "--")
	if value, ok := view.Variables[key]; ok && !css.IsReference(value) {
		return value
	}
	for _, sw := range view.Swatches {
		if sw.Slug == key {
			return r.deref(view, sw.Background)
		}
	}
	return ""
}

// CardBackground implements StyleReader.
func (r VariableReader) CardBackground(View) string {
	if r.Background == "" {
		return colour.White.Hex()
	}
	return r.Background
}

// SwatchBackground implements StyleReader.
func (r VariableReader) SwatchBackground(view View, index int) string {
	if index < 0 || index >= len(view.Swatches) {
		return ""
	}
	return r.deref(view, view.Swatches[index].Background)
}

func (r VariableReader) deref(view View, value string) string {
	value = view.Variables.Deref(value)
	if !css.IsReference(value) {
		return value
	}
	m := referenceName(value)
	if slug, ok := strings.CutPrefix(m, presetColorPrefix); ok {
		for _, sw := range view.Swatches {
			if sw.Slug == slug && !css.IsReference(sw.Background) {
				return sw.Background
			}
		}
	}
	return value
}

func referenceName(value string) string {
	inner := strings.TrimPrefix(value, "var(")
	inner = strings.TrimSpace(strings.TrimSuffix(inner, ")"))
	if i := strings.IndexByte(inner, ','); i >= 0 {
		inner = strings.TrimSpace(inner[:i])
	}
	return strings.TrimPrefix(inner, "--")
}
