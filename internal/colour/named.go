package colour

import (
	"strings"

	"golang.org/x/image/colornames"
)

// NamedResolver resolves the CSS named colours plus the transparent keyword.
type NamedResolver struct{}

// Resolve implements Resolver.
func (NamedResolver) Resolve(input string) (RGBA, bool) {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "transparent" {
		return RGBA{}, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}, true
}

var _ Resolver = NamedResolver{}
