// Package htmlview renders the gallery and the preview page as static HTML.
package htmlview

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/swatchbook/internal/card"
	"github.com/alexisbeaulieu97/swatchbook/internal/colour"
	"github.com/alexisbeaulieu97/swatchbook/internal/preview"
	"github.com/alexisbeaulieu97/swatchbook/internal/resolve"
	"github.com/alexisbeaulieu97/swatchbook/internal/session"
)

// Options tunes the gallery page.
type Options struct {
	Title string
	// CardBackground feeds the contrast pass when no browser computes styles.
	CardBackground string
	Notices        []session.Notice
}

type galleryPage struct {
	Title   string
	Notices []session.Notice
	Cards   []cardData
}

type cardData struct {
	card.View
	StyleBlock template.CSS
	Swatches   []swatchData
	Fonts      []fontData
	Body       *fontData
}

type swatchData struct {
	Label string
	Style template.CSS
}

type fontData struct {
	Text  string
	Style template.CSS
}

type previewPage struct {
	preview.View
	Style template.CSS
}

var (
	galleryTemplate = template.Must(template.New("gallery").Parse(galleryHTML))
	previewTemplate = template.Must(template.New("preview").Parse(previewHTML))
)

// RenderGallery writes one card per variation in snap. Layout happens first;
// the contrast pass then sets each swatch's --label-color.
func RenderGallery(w io.Writer, snap session.Snapshot, opts Options) error {
	bg := opts.CardBackground
	if bg == "" {
		bg = "#ffffff"
	}
	title := opts.Title
	if title == "" {
		title = "Style variations"
	}

	views := card.Gallery(snap.Variations, snap.ActiveSlug)
	views = card.AnnotateAll(views, card.VariableReader{Background: bg}, colour.NamedResolver{})

	page := galleryPage{Title: title, Notices: opts.Notices}
	for _, v := range views {
		page.Cards = append(page.Cards, newCardData(v))
	}
	if err := galleryTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}

// RenderPreview writes the full preview page for one state of the controller.
func RenderPreview(w io.Writer, pv preview.View) error {
	clean := make(resolve.Palette, len(pv.Palette))
	for role, value := range pv.Palette {
		clean[role] = sanitizeValue(value)
	}
	pv.Palette = clean
	page := previewPage{View: pv, Style: template.CSS(pv.CustomProperties())}
	if err := previewTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return nil
}

func newCardData(v card.View) cardData {
	data := cardData{View: v}
	data.StyleBlock = template.CSS(sanitizeStyleBlock(v.CSS))
	for _, s := range v.Swatches {
		style := "background: " + sanitizeValue(s.Background) + ";"
		if s.LabelColor != "" {
			style += " --label-color: " + sanitizeValue(s.LabelColor) + ";"
		}
		data.Swatches = append(data.Swatches, swatchData{Label: s.Label, Style: template.CSS(style)})
	}
	for _, f := range v.Fonts {
		data.Fonts = append(data.Fonts, fontData{Text: f.Text, Style: fontStyle(f.FontFamily)})
	}
	if v.BodySample != nil {
		data.Body = &fontData{Text: v.BodySample.Text, Style: fontStyle(v.BodySample.FontFamily)}
	}
	return data
}

func fontStyle(family string) template.CSS {
	if family == "" {
		return ""
	}
	return template.CSS("font-family: " + sanitizeValue(family) + ";")
}

// sanitizeValue keeps a single declaration value from escaping its
// attribute or declaration.
func sanitizeValue(value string) string {
	return strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "", "\"", "'").Replace(value)
}

// sanitizeStyleBlock keeps scoped CSS from closing its <style> element.
func sanitizeStyleBlock(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
