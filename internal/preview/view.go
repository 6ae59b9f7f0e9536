package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatchbook/internal/resolve"
)

// Mode labels shown in the preview header.
const (
	LightLabel = "☀️ Light"
	DarkLabel  = "🌙 Dark"
)

// ListItem is one bullet of the sample list. Alt items use the second list colour.
type ListItem struct {
	Text string
	Alt  bool
}

// Content is the fixed sample page shown for every variation.
type Content struct {
	Heading         string
	FeaturedTitle   string
	FeaturedBody    string
	Subheading      string
	Items           []ListItem
	Quote           string
	PrimaryAction   string
	SecondaryAction string
}

// SampleContent is the copy rendered on the preview page.
var SampleContent = Content{
	Heading:       "Welcome to Your Site",
	FeaturedTitle: "Featured Section",
	FeaturedBody:  "This section uses the primary-lighter background to create visual hierarchy and draw attention to important content.",
	Subheading:    "Key Features",
	Items: []ListItem{
		{Text: "Beautiful color palettes for every mood", Alt: true},
		{Text: "Carefully crafted design variations"},
		{Text: "Instant preview and application", Alt: true},
		{Text: "Light and dark mode support"},
	},
	Quote:           "\"This theme variation system makes it incredibly easy to find the perfect color scheme for my website. The preview feature is a game-changer!\"",
	PrimaryAction:   "Get Started",
	SecondaryAction: "Learn More",
}

// cssNames maps each role to the custom property the preview page reads.
var cssNames = map[resolve.Role]string{
	resolve.RoleBackground:   "--bg-color",
	resolve.RoleText:         "--text-color",
	resolve.RoleHeading:      "--heading-color",
	resolve.RoleFeaturedBg:   "--featured-bg",
	resolve.RoleFeaturedText: "--featured-text",
	resolve.RoleList1:        "--list-color-1",
	resolve.RoleList2:        "--list-color-2",
	resolve.RoleAccent:       "--accent-dark",
	resolve.RoleAccent2:      "--accent-darker",
	resolve.RoleTertiary1:    "--tertiary-light",
	resolve.RoleTertiary2:    "--tertiary-dark",
}

// View is everything a backend needs to draw the preview for one state.
type View struct {
	Slug      string
	Title     string
	Index     int
	Count     int
	Counter   string
	Mode      resolve.Mode
	ModeLabel string
	Palette   resolve.Palette
	Content   Content
}

// View builds the preview for the current state. It returns false while closed.
func (c *Controller) View() (View, bool) {
	v, ok := c.Current()
	if !ok {
		return View{}, false
	}
	label := LightLabel
	if c.mode == resolve.Dark {
		label = DarkLabel
	}
	return View{
		Slug:      v.Key(),
		Title:     v.DisplayTitle(),
		Index:     c.index,
		Count:     len(c.variations),
		Counter:   fmt.Sprintf("%d / %d", c.index+1, len(c.variations)),
		Mode:      c.mode,
		ModeLabel: label,
		Palette:   resolve.ForVariation(v, c.mode),
		Content:   SampleContent,
	}, true
}

// Color returns the resolved value for role.
func (v View) Color(role resolve.Role) string {
	return v.Palette[role]
}

// CustomProperties renders the palette as an inline style declaration list in
// role order, e.g. "--bg-color: #fff; --text-color: #111;".
func (v View) CustomProperties() string {
	parts := make([]string, 0, len(resolve.Roles))
	for _, role := range resolve.Roles {
		parts = append(parts, fmt.Sprintf("%s: %s;", cssNames[role], v.Palette[role]))
	}
	return strings.Join(parts, " ")
}
