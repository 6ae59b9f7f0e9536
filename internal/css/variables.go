package css

import (
	"regexp"
	"strings"
)

var (
	declarationPattern = regexp.MustCompile(`(?i)--([a-z0-9-]+)\s*:\s*([^;]+);`)
	referencePattern   = regexp.MustCompile(`(?i)var\(--([a-z0-9-]+)\)`)
)

// Variables maps custom property names, without the leading --, to values.
type Variables map[string]string

// ParseVariables collects every --name: value; declaration in text. A value
// of the form var(--other) is replaced by other's value when other was
// declared earlier; otherwise the reference is kept verbatim. Resolution is a
// single hop: a chain is only followed as far as earlier declarations already
// resolved it.
func ParseVariables(text string) Variables {
	vars := Variables{}
	if text == "" {
		return vars
	}
	for _, m := range declarationPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		value := strings.TrimSpace(m[2])
		vars[name] = vars.Deref(value)
	}
	return vars
}

// Deref resolves value through one var() reference when it starts with one
// and the referenced variable is known and non-empty. Any other value is
// returned unchanged.
func (v Variables) Deref(value string) string {
	if !IsReference(value) {
		return value
	}
	m := referencePattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	if resolved := v[m[1]]; resolved != "" {
		return resolved
	}
	return value
}

// IsReference reports whether value is still an unresolved var() expression.
func IsReference(value string) bool {
	return strings.HasPrefix(value, "var(")
}
