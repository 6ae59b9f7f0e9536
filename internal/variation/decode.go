package variation

import (
	"errors"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

// document mirrors the parts of a global styles document we read. Lists go
// through flexList so origin-wrapped and numeric-keyed shapes decode too.
type document struct {
	Title    string `yaml:"title"`
	Slug     string `yaml:"slug"`
	Settings struct {
		Color struct {
			Palette flexList[PaletteEntry] `yaml:"palette"`
		} `yaml:"color"`
		Typography struct {
			FontFamilies flexList[fontFamilyDoc] `yaml:"fontFamilies"`
		} `yaml:"typography"`
	} `yaml:"settings"`
	Styles struct {
		CSS        string `yaml:"css"`
		Typography struct {
			FontFamily string `yaml:"fontFamily"`
		} `yaml:"typography"`
	} `yaml:"styles"`
}

type fontFamilyDoc struct {
	Name       string `yaml:"name"`
	Slug       string `yaml:"slug"`
	FontFamily string `yaml:"fontFamily"`
	Dashed     string `yaml:"font-family"`
}

type record struct {
	Slug   string    `yaml:"slug"`
	Title  string    `yaml:"title"`
	Source string    `yaml:"source"`
	Config yaml.Node `yaml:"config"`
}

// DecodeRecords decodes the variation list served by a gallery endpoint:
// either {"variations": [...]} or a bare sequence of records with slug,
// title, source and config.
func DecodeRecords(origin string, data []byte) ([]Variation, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, swatcherrors.NewParseError(origin, 0, err)
	}
	list := unwrapDocument(root)
	if list == nil {
		return nil, nil
	}
	if list.Kind == yaml.MappingNode {
		list = mappingValue(list, "variations")
		if list == nil {
			return nil, nil
		}
	}
	if list.Kind != yaml.SequenceNode {
		return nil, swatcherrors.NewParseError(origin, list.Line, errors.New("variations must be a list"))
	}

	variations := make([]Variation, 0, len(list.Content))
	for _, item := range list.Content {
		var rec record
		if err := item.Decode(&rec); err != nil && !isTypeError(err) {
			return nil, swatcherrors.NewParseError(origin, item.Line, err)
		}
		v := Variation{
			Slug:       rec.Slug,
			Title:      rec.Title,
			Source:     ParseSource(rec.Source),
			SourcePath: rec.Source,
		}
		if err := v.decodeConfig(&rec.Config); err != nil {
			return nil, swatcherrors.NewParseError(origin, item.Line, err)
		}
		variations = append(variations, v)
	}
	return variations, nil
}

// DecodeThemeFile decodes a variation stored as a standalone styles
// document, such as a theme's styles/<name>.json. The slug defaults to the
// file name and the title to the document title.
func DecodeThemeFile(path string, data []byte, source Source) (Variation, error) {
	root, err := parseDocument(data)
	if err != nil {
		return Variation{}, swatcherrors.NewParseError(path, 0, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	v := Variation{Slug: base, Title: base, Source: source, SourcePath: path}
	node := unwrapDocument(root)
	if node == nil {
		return v, nil
	}
	if node.Kind != yaml.MappingNode {
		return Variation{}, swatcherrors.NewParseError(path, node.Line, errors.New("styles document must be an object"))
	}
	if err := v.decodeConfig(node); err != nil {
		return Variation{}, swatcherrors.NewParseError(path, node.Line, err)
	}
	if v.Config.Raw != nil {
		if title, ok := v.Config.Raw["title"].(string); ok && title != "" {
			v.Title = title
		}
		if slug, ok := v.Config.Raw["slug"].(string); ok && slug != "" {
			v.Slug = slug
		}
	}
	return v, nil
}

func (v *Variation) decodeConfig(node *yaml.Node) error {
	if node == nil || node.Kind == 0 || isNull(node) {
		v.Config = StyleConfig{Raw: map[string]any{}}
		return nil
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		if !isTypeError(err) {
			return err
		}
		v.Issues = append(v.Issues, Issue{Kind: IssueMalformed, Path: "config", Detail: err.Error()})
	}

	raw := map[string]any{}
	if err := node.Decode(&raw); err != nil && !isTypeError(err) {
		return err
	}
	v.Repairs = append(v.Repairs, repairRaw(raw)...)

	cfg := StyleConfig{Raw: raw}
	cfg.Settings.Color.Palette = doc.Settings.Color.Palette.items
	for _, f := range doc.Settings.Typography.FontFamilies.items {
		family := f.FontFamily
		if family == "" {
			family = f.Dashed
		}
		cfg.Settings.Typography.FontFamilies = append(cfg.Settings.Typography.FontFamilies,
			FontFamily{Name: f.Name, Slug: f.Slug, FontFamily: family})
	}
	cfg.Styles.CSS = doc.Styles.CSS
	cfg.Styles.Typography.FontFamily = doc.Styles.Typography.FontFamily
	v.Config = cfg
	v.Issues = append(v.Issues, validateConfig(cfg)...)
	return nil
}

// flexList decodes a list that may also be spelled as a mapping from origin
// to list, or as a mapping with numeric keys standing in for indexes.
type flexList[T any] struct {
	items []T
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *flexList[T]) UnmarshalYAML(node *yaml.Node) error {
	items, err := decodeFlex[T](node)
	f.items = items
	return err
}

func decodeFlex[T any](node *yaml.Node) ([]T, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var out []T
		err := node.Decode(&out)
		return out, err
	case yaml.MappingNode:
		if indexed, ok := numericEntries(node); ok {
			out := make([]T, 0, len(indexed))
			for _, child := range indexed {
				var item T
				if err := child.Decode(&item); err != nil && !isTypeError(err) {
					return out, err
				}
				out = append(out, item)
			}
			return out, nil
		}
		var out []T
		for i := 1; i < len(node.Content); i += 2 {
			items, err := decodeFlex[T](node.Content[i])
			if err != nil && !isTypeError(err) {
				return out, err
			}
			out = append(out, items...)
		}
		return out, nil
	default:
		return nil, nil
	}
}

// numericEntries returns the values of a mapping whose keys are all
// non-negative integers, ordered by key.
func numericEntries(node *yaml.Node) ([]*yaml.Node, bool) {
	if len(node.Content) == 0 {
		return nil, false
	}
	type entry struct {
		index int
		value *yaml.Node
	}
	entries := make([]entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		n, err := strconv.Atoi(node.Content[i].Value)
		if err != nil || n < 0 {
			return nil, false
		}
		entries = append(entries, entry{index: n, value: node.Content[i+1]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].index < entries[j].index })
	out := make([]*yaml.Node, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out, true
}

func unwrapDocument(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if isNull(node) {
		return nil
	}
	return node
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func isTypeError(err error) bool {
	var typeErr *yaml.TypeError
	return errors.As(err, &typeErr)
}
