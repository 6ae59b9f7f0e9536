package variation

import (
	"fmt"
	"sort"
	"strconv"
)

// IssueKind classifies a problem found in a variation document.
type IssueKind string

const (
	IssuePaletteStructure      IssueKind = "palette_structure"
	IssueFontFamiliesStructure IssueKind = "font_families_structure"
	IssueFontSizesStructure    IssueKind = "font_sizes_structure"
	IssueMissingSlug           IssueKind = "missing_slug"
	IssueMissingColor          IssueKind = "missing_color"
	IssueMissingFontFamily     IssueKind = "missing_font_family"
	IssueMalformed             IssueKind = "malformed"
)

// Issue is one problem found, and possibly fixed, while ingesting a variation.
type Issue struct {
	Kind   IssueKind `json:"type"`
	Path   string    `json:"path"`
	Detail string    `json:"issue"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s at %s: %s", i.Kind, i.Path, i.Detail)
}

// repairRaw rewrites, in place, list-valued settings that arrived as objects
// keyed by index, and converts every map to string keys so the document can be
// encoded as JSON again.
func repairRaw(raw map[string]any) []Issue {
	for k, v := range raw {
		raw[k] = stringKeys(v)
	}

	var repairs []Issue
	settings, _ := raw["settings"].(map[string]any)
	if settings == nil {
		return nil
	}
	if color, ok := settings["color"].(map[string]any); ok {
		repairs = append(repairs, repairList(color, "palette", "settings.color.palette", IssuePaletteStructure)...)
	}
	if typography, ok := settings["typography"].(map[string]any); ok {
		repairs = append(repairs, repairList(typography, "fontFamilies", "settings.typography.fontFamilies", IssueFontFamiliesStructure)...)
		repairs = append(repairs, repairList(typography, "fontSizes", "settings.typography.fontSizes", IssueFontSizesStructure)...)
	}
	return repairs
}

func repairList(parent map[string]any, key, path string, kind IssueKind) []Issue {
	obj, ok := parent[key].(map[string]any)
	if !ok {
		return nil
	}
	if list, ok := indexedToList(obj); ok {
		parent[key] = list
		return []Issue{{Kind: kind, Path: path, Detail: fmt.Sprintf("object with %d numeric keys converted to a list", len(list))}}
	}

	var repairs []Issue
	origins := make([]string, 0, len(obj))
	for origin := range obj {
		origins = append(origins, origin)
	}
	sort.Strings(origins)
	for _, origin := range origins {
		inner, ok := obj[origin].(map[string]any)
		if !ok {
			continue
		}
		if list, ok := indexedToList(inner); ok {
			obj[origin] = list
			repairs = append(repairs, Issue{
				Kind:   kind,
				Path:   path + "." + origin,
				Detail: fmt.Sprintf("object with %d numeric keys converted to a list", len(list)),
			})
		}
	}
	return repairs
}

func indexedToList(obj map[string]any) ([]any, bool) {
	if len(obj) == 0 {
		return nil, false
	}
	indexes := make([]int, 0, len(obj))
	byIndex := make(map[int]any, len(obj))
	for k, v := range obj {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 {
			return nil, false
		}
		indexes = append(indexes, n)
		byIndex[n] = v
	}
	sort.Ints(indexes)
	list := make([]any, 0, len(indexes))
	for _, n := range indexes {
		list = append(list, byIndex[n])
	}
	return list, true
}

func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			t[k] = stringKeys(inner)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[fmt.Sprint(k)] = stringKeys(inner)
		}
		return out
	case []any:
		for i, inner := range t {
			t[i] = stringKeys(inner)
		}
		return t
	default:
		return v
	}
}
