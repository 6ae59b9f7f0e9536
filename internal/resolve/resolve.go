// Package resolve maps the semantic roles of a preview page onto concrete
// colours taken from a variation's palette.
package resolve

import (
	"strings"

	"github.com/alexisbeaulieu97/swatchbook/internal/css"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
)

// Mode selects the light or dark role table.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode accepts "light" or "dark"; anything else is light.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return Dark
	}
	return Light
}

// Role is a visual purpose on the preview page.
type Role string

const (
	RoleBackground   Role = "background"
	RoleText         Role = "text"
	RoleHeading      Role = "heading"
	RoleFeaturedBg   Role = "featured-bg"
	RoleFeaturedText Role = "featured-text"
	RoleList1        Role = "list-1"
	RoleList2        Role = "list-2"
	RoleAccent       Role = "accent"
	RoleAccent2      Role = "accent-2"
	RoleTertiary1    Role = "tertiary-1"
	RoleTertiary2    Role = "tertiary-2"
)

// Roles lists every role in presentation order.
var Roles = []Role{
	RoleBackground, RoleText, RoleHeading, RoleFeaturedBg, RoleFeaturedText,
	RoleList1, RoleList2, RoleAccent, RoleAccent2, RoleTertiary1, RoleTertiary2,
}

// Rule is an ordered list of slug fragments to look for and the literal used
// when none of them resolves.
type Rule struct {
	Candidates []string
	Fallback   string
}

// Table assigns a rule to every role.
type Table map[Role]Rule

var shared = Table{
	RoleAccent:    {Candidates: []string{"accent-dark", "accent"}, Fallback: "#d84315"},
	RoleAccent2:   {Candidates: []string{"accent-darker"}, Fallback: "#bf360c"},
	RoleTertiary1: {Candidates: []string{"tertiary-light", "tertiary"}, Fallback: "#fff9c4"},
	RoleTertiary2: {Candidates: []string{"tertiary-dark", "tertiary-darker"}, Fallback: "#f57f17"},
}

// LightTable holds the light-mode rules.
var LightTable = withShared(Table{
	RoleBackground:   {Candidates: []string{"base-light", "background-light", "base", "background"}, Fallback: "#ffffff"},
	RoleText:         {Candidates: []string{"text-on-light", "contrast-light", "foreground-light", "contrast", "foreground"}, Fallback: "#1a1a1a"},
	RoleHeading:      {Candidates: []string{"primary-dark", "primary-darker", "primary"}, Fallback: "#004f78"},
	RoleFeaturedBg:   {Candidates: []string{"primary-lighter", "primary-light"}, Fallback: "#b1e4ff"},
	RoleFeaturedText: {Candidates: []string{"text-on-light"}, Fallback: "#1a1a1a"},
	RoleList1:        {Candidates: []string{"secondary-dark", "secondary-darker", "secondary"}, Fallback: "#664402"},
	RoleList2:        {Candidates: []string{"secondary-darker", "secondary-dark"}, Fallback: "#4e3401"},
})

// DarkTable holds the dark-mode rules.
var DarkTable = withShared(Table{
	RoleBackground:   {Candidates: []string{"base-dark", "background-dark", "base"}, Fallback: "#1a1a1a"},
	RoleText:         {Candidates: []string{"text-on-dark", "contrast-dark", "foreground-dark", "contrast"}, Fallback: "#e0e0e0"},
	RoleHeading:      {Candidates: []string{"primary-light", "primary"}, Fallback: "#7ad1ff"},
	RoleFeaturedBg:   {Candidates: []string{"primary-darker", "primary-dark"}, Fallback: "#003c5c"},
	RoleFeaturedText: {Candidates: []string{"text-on-dark"}, Fallback: "#e0e0e0"},
	RoleList1:        {Candidates: []string{"secondary-light", "secondary"}, Fallback: "#fcbc41"},
	RoleList2:        {Candidates: []string{"secondary-lighter"}, Fallback: "#fdd891"},
})

func withShared(t Table) Table {
	for role, rule := range shared {
		t[role] = rule
	}
	return t
}

// TableFor returns the rule table for mode.
func TableFor(mode Mode) Table {
	if mode == Dark {
		return DarkTable
	}
	return LightTable
}

// ResolveRole walks candidates in order. For each it takes the first palette
// entry whose slug contains the candidate, dereferences a var() colour once
// through vars, and returns it if it is no longer a reference. fallback is
// returned when no candidate produces a concrete value.
func ResolveRole(palette []variation.PaletteEntry, vars css.Variables, candidates []string, fallback string) string {
	for _, candidate := range candidates {
		entry, ok := findContaining(palette, candidate)
		if !ok {
			continue
		}
		value := vars.Deref(entry.Color)
		if value != "" && !css.IsReference(value) {
			return value
		}
	}
	return fallback
}

func findContaining(palette []variation.PaletteEntry, fragment string) (variation.PaletteEntry, bool) {
	for _, entry := range palette {
		if entry.Slug != "" && strings.Contains(entry.Slug, fragment) {
			return entry, true
		}
	}
	return variation.PaletteEntry{}, false
}

// Palette is the resolved colour for every role.
type Palette map[Role]string

// Resolve fills every role from the table for mode.
func Resolve(palette []variation.PaletteEntry, vars css.Variables, mode Mode) Palette {
	table := TableFor(mode)
	out := make(Palette, len(table))
	for _, role := range Roles {
		rule := table[role]
		out[role] = ResolveRole(palette, vars, rule.Candidates, rule.Fallback)
	}
	return out
}

// ForVariation parses the variation's stylesheet and resolves its palette.
// The variable map is rebuilt on every call.
func ForVariation(v variation.Variation, mode Mode) Palette {
	vars := css.ParseVariables(v.Config.Styles.CSS)
	return Resolve(v.Config.Settings.Color.Palette, vars, mode)
}
