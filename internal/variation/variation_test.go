package variation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

func TestNormalizeSlug(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Ocean":              "ocean",
		"  Dark Mode! ":      "dark-mode",
		"--already-ok--":     "already-ok",
		"snake_case_kept":    "snake_case_kept",
		"Café & Crème":       "caf-cr-me",
		"":                   "",
		"---":                "",
		"Primary/Light 2024": "primary-light-2024",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeSlug(in), in)
	}
}

func TestKeyFallsBackToTitleThenDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ocean-blue", Variation{Slug: "Ocean Blue", Title: "ignored"}.Key())
	assert.Equal(t, "sunset", Variation{Title: "Sunset"}.Key())
	assert.Equal(t, "variation", Variation{}.Key())
	assert.Equal(t, "sunset", Variation{Slug: "sunset"}.DisplayTitle())
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SourceTheme, ParseSource("theme"))
	assert.Equal(t, SourceExport, ParseSource(" Export "))
	assert.Equal(t, SourceOther, ParseSource("wp-content/uploads/custom.json"))
}

func TestDecodeRecords(t *testing.T) {
	t.Parallel()

	payload := `{"variations": [
		{"slug": "ocean", "title": "Ocean", "source": "theme", "config": {
			"settings": {"color": {"palette": [
				{"slug": "base", "color": "#ffffff"},
				{"slug": "primary", "color": "var(--wp--preset--color--blue)"}
			]},
			"typography": {"fontFamilies": [
				{"name": "Inter", "slug": "inter", "fontFamily": "Inter, sans-serif"},
				{"slug": "mono", "font-family": "monospace"}
			]}},
			"styles": {"css": ":root{--base:#fff}", "typography": {"fontFamily": "var(--wp--preset--font-family--inter)"}}
		}},
		{"slug": "empty", "title": "Empty"}
	]}`

	variations, err := DecodeRecords("rest", []byte(payload))
	require.NoError(t, err)
	require.Len(t, variations, 2)

	ocean := variations[0]
	assert.Equal(t, "ocean", ocean.Key())
	assert.Equal(t, SourceTheme, ocean.Source)
	require.Len(t, ocean.Config.Settings.Color.Palette, 2)
	assert.Equal(t, "var(--wp--preset--color--blue)", ocean.Config.Settings.Color.Palette[1].Color)
	require.Len(t, ocean.Config.Settings.Typography.FontFamilies, 2)
	assert.Equal(t, "monospace", ocean.Config.Settings.Typography.FontFamilies[1].FontFamily)
	assert.Equal(t, ":root{--base:#fff}", ocean.Config.Styles.CSS)
	assert.Equal(t, "var(--wp--preset--font-family--inter)", ocean.Config.Styles.Typography.FontFamily)
	assert.Empty(t, ocean.Repairs)
	assert.Empty(t, ocean.Issues)

	empty := variations[1]
	assert.Empty(t, empty.Config.Settings.Color.Palette)
	assert.NotNil(t, empty.Config.Raw)
}

func TestDecodeRecordsAcceptsBareList(t *testing.T) {
	t.Parallel()

	variations, err := DecodeRecords("file", []byte(`[{"slug": "a"}, {"slug": "b"}]`))
	require.NoError(t, err)
	require.Len(t, variations, 2)
	assert.Equal(t, "b", variations[1].Slug)
}

func TestDecodeRecordsRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := DecodeRecords("rest", []byte(`{"variations": "nope"}`))
	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = DecodeRecords("rest", []byte(`{"variations": [`))
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "rest", parseErr.Path)

	none, err := DecodeRecords("rest", []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDecodeThemeFileFlattensOriginWrappedPalette(t *testing.T) {
	t.Parallel()

	doc := `{
		"title": "Midnight",
		"settings": {"color": {"palette": {
			"theme": [{"slug": "base-dark", "color": "#101010"}],
			"custom": {"1": {"slug": "accent", "color": "#ff0000"}, "0": {"slug": "primary", "color": "#00f"}}
		}}}
	}`

	v, err := DecodeThemeFile("styles/midnight.json", []byte(doc), SourceTheme)
	require.NoError(t, err)

	assert.Equal(t, "Midnight", v.Title)
	assert.Equal(t, "midnight", v.Slug)
	assert.Equal(t, "styles/midnight.json", v.SourcePath)

	slugs := make([]string, 0, len(v.Config.Settings.Color.Palette))
	for _, p := range v.Config.Settings.Color.Palette {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"base-dark", "primary", "accent"}, slugs)

	require.Len(t, v.Repairs, 1)
	assert.Equal(t, IssuePaletteStructure, v.Repairs[0].Kind)
	assert.Equal(t, "settings.color.palette.custom", v.Repairs[0].Path)

	// The raw document now carries a real list and encodes as JSON.
	encoded, err := json.Marshal(v.Config.Raw)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"custom":[{"color":"#00f","slug":"primary"},{"color":"#ff0000","slug":"accent"}]`)
}

func TestDecodeThemeFileRepairsNumericKeyedLists(t *testing.T) {
	t.Parallel()

	doc := `
settings:
  color:
    palette:
      1: {slug: second, color: "#222"}
      0: {slug: first, color: "#111"}
  typography:
    fontFamilies:
      0: {name: Serif, fontFamily: serif}
    fontSizes:
      0: {slug: small, size: 12px}
`
	v, err := DecodeThemeFile("styles/numbered.yaml", []byte(doc), SourceTheme)
	require.NoError(t, err)

	require.Len(t, v.Config.Settings.Color.Palette, 2)
	assert.Equal(t, "first", v.Config.Settings.Color.Palette[0].Slug)
	require.Len(t, v.Config.Settings.Typography.FontFamilies, 1)

	kinds := make([]IssueKind, 0, len(v.Repairs))
	for _, r := range v.Repairs {
		kinds = append(kinds, r.Kind)
	}
	assert.ElementsMatch(t, []IssueKind{IssuePaletteStructure, IssueFontFamiliesStructure, IssueFontSizesStructure}, kinds)

	_, err = json.Marshal(v.Config.Raw)
	require.NoError(t, err)
}

func TestDecodeThemeFileReportsIncompleteEntries(t *testing.T) {
	t.Parallel()

	doc := `{"settings": {"color": {"palette": [{"color": "#fff"}, {"slug": "accent"}]},
		"typography": {"fontFamilies": [{"name": "Nameless"}]}}}`

	v, err := DecodeThemeFile("styles/broken.json", []byte(doc), SourceTheme)
	require.NoError(t, err)

	require.Len(t, v.Config.Settings.Color.Palette, 2, "incomplete entries are kept")
	kinds := make([]IssueKind, 0, len(v.Issues))
	for _, issue := range v.Issues {
		kinds = append(kinds, issue.Kind)
	}
	assert.ElementsMatch(t, []IssueKind{IssueMissingSlug, IssueMissingColor, IssueMissingFontFamily}, kinds)
}

func TestDecodeThemeFileToleratesMistypedFields(t *testing.T) {
	t.Parallel()

	doc := `{"styles": {"css": {"not": "a string"}}, "settings": {"color": {"palette": [{"slug": "base", "color": "#fff"}]}}}`

	v, err := DecodeThemeFile("styles/odd.json", []byte(doc), SourceTheme)
	require.NoError(t, err)
	assert.Empty(t, v.Config.Styles.CSS)
	require.Len(t, v.Config.Settings.Color.Palette, 1)
	require.NotEmpty(t, v.Issues)
	assert.Equal(t, IssueMalformed, v.Issues[0].Kind)
}

func TestDecodeThemeFileRejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := DecodeThemeFile("styles/list.json", []byte(`[1, 2]`), SourceTheme)
	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "base", PaletteEntry{Slug: "base", Name: "Base"}.Label())
	assert.Equal(t, "Base", PaletteEntry{Name: "Base"}.Label())
	assert.Equal(t, "Inter", FontFamily{Name: "Inter", Slug: "inter"}.Label())
	assert.Equal(t, "inter", FontFamily{Slug: "inter"}.Label())
	assert.Equal(t, "Font", FontFamily{}.Label())
}

func TestDecodeRecordsReadsSurrogatePairEscapes(t *testing.T) {
	t.Parallel()

	payload := `{"variations": [
		{"slug": "night", "title": "Night \ud83c\udf19", "config": {}},
		{"slug": "day", "title": "Day", "config": {}}
	]}`

	variations, err := DecodeRecords("rest", []byte(payload))
	require.NoError(t, err)
	require.Len(t, variations, 2)
	assert.Equal(t, "Night 🌙", variations[0].Title)
	assert.Equal(t, "day", variations[1].Key())
}

func TestDecodeRecordsKeepsLastDuplicateKey(t *testing.T) {
	t.Parallel()

	payload := `[{"slug": "first", "title": "Twice", "slug": "second", "config": {"title": "a", "title": "b"}}]`

	variations, err := DecodeRecords("rest", []byte(payload))
	require.NoError(t, err)
	require.Len(t, variations, 1)
	assert.Equal(t, "second", variations[0].Slug)
	assert.Equal(t, "b", variations[0].Config.Raw["title"])
}

func TestDecodeThemeFileFromJSONKeepsOrderAndNumbers(t *testing.T) {
	t.Parallel()

	doc := `{
		"version": 3,
		"title": "Dup",
		"title": "Moon \uD83C\uDF19",
		"settings": {"color": {"palette": {
			"theme": [{"slug": "z", "color": "#000"}],
			"custom": [{"slug": "a", "color": "#fff"}]
		}}},
		"styles": {"spacing": 1.5, "flag": true, "none": null}
	}`

	v, err := DecodeThemeFile("styles/moon.json", []byte(doc), SourceTheme)
	require.NoError(t, err)
	assert.Equal(t, "Moon 🌙", v.Title)

	palette := v.Config.Settings.Color.Palette
	require.Len(t, palette, 2)
	assert.Equal(t, "z", palette[0].Slug)
	assert.Equal(t, "a", palette[1].Slug)

	assert.Equal(t, 3, v.Config.Raw["version"])
	styles, ok := v.Config.Raw["styles"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.5, styles["spacing"])
	assert.Equal(t, true, styles["flag"])
	assert.Nil(t, styles["none"])

	encoded, err := json.Marshal(v.Config.Raw)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"title":"Moon 🌙"`)
}

func TestDecodeThemeFileStillReadsYAML(t *testing.T) {
	t.Parallel()

	v, err := DecodeThemeFile("styles/dusk.yaml", []byte("title: Dusk\nsettings:\n  color:\n    palette:\n      - slug: base\n        color: \"#101020\"\n"), SourceTheme)
	require.NoError(t, err)
	assert.Equal(t, "Dusk", v.Title)
	require.Len(t, v.Config.Settings.Color.Palette, 1)
}
