// Package colour parses CSS colour strings and answers WCAG contrast questions
// about them. Every function degrades to a caller-supplied default instead of
// failing; the gallery must keep rendering when a palette carries garbage.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// RGBA is an 8-bit colour with a straight alpha in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

var (
	// Black is the conventional fallback for unparseable foregrounds.
	Black = RGB{0, 0, 0}
	// White is the conventional fallback for unparseable backgrounds.
	White = RGB{255, 255, 255}
)

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]+)\s*)?\)$`)
)

// Resolver turns an arbitrary colour string (a named colour, a system colour)
// into a concrete value. It stands in for a rendering engine's computed style.
type Resolver interface {
	Resolve(input string) (RGBA, bool)
}

// Opaque converts an RGB into a fully opaque RGBA.
func (c RGB) Opaque() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Translucent reports whether the colour needs compositing before use.
func (c RGBA) Translucent() bool {
	return c.A < 1
}

// String formats the colour as CSS rgba() notation.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Parse accepts #rgb, #rrggbb, rgb(r,g,b) and rgba(r,g,b,a). Anything else is
// handed to resolver when one is supplied. The boolean is false when no form
// matched.
func Parse(input string, resolver Resolver) (RGBA, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return RGBA{}, false
	}
	if c, ok := parseHex(s); ok {
		return c, true
	}
	if c, ok := parseFunctional(s); ok {
		return c, true
	}
	if resolver != nil {
		return resolver.Resolve(s)
	}
	return RGBA{}, false
}

// ParseOr is Parse with a fallback for inputs nothing could make sense of.
func ParseOr(input string, resolver Resolver, fallback RGBA) RGBA {
	if c, ok := Parse(input, resolver); ok {
		return c
	}
	return fallback
}

func parseHex(s string) (RGBA, bool) {
	if !hexPattern.MatchString(s) {
		return RGBA{}, false
	}
	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	return RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 1}, true
}

func parseFunctional(s string) (RGBA, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGBA{}, false
	}
	c := RGBA{R: channel(m[1]), G: channel(m[2]), B: channel(m[3]), A: 1}
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return RGBA{}, false
		}
		c.A = math.Max(0, math.Min(1, a))
	}
	return c, true
}

func channel(digits string) uint8 {
	v, err := strconv.Atoi(digits)
	if err != nil || v > 255 {
		return 255
	}
	return uint8(v)
}
