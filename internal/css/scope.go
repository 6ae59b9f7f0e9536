// Package css rewrites the raw stylesheet embedded in a style variation so it
// applies to a single preview card, and extracts the custom properties it
// declares.
package css

import (
	"regexp"
	"strings"
)

const editorWrapper = ".editor-styles-wrapper"

var (
	rootAndWrapperPattern = regexp.MustCompile(`:root\s*,\s*\.editor-styles-wrapper`)
	selfReferencePattern  = regexp.MustCompile(`(?i)(--[a-z0-9_-]+)\s*:\s*var\(\s*(--[a-z0-9_-]+)\s*\)\s*;?`)
)

// Scope rewrites the root-level selectors of css to .scopeClass and drops
// custom properties defined in terms of themselves. Once scoped, such a
// declaration would shadow the inherited value with a cycle.
//
// The input is returned untouched if rewriting panics.
func Scope(css, scopeClass string) (out string) {
	if css == "" {
		return ""
	}
	defer func() {
		if recover() != nil {
			out = css
		}
	}()

	scope := "." + scopeClass
	out = rootAndWrapperPattern.ReplaceAllLiteralString(css, scope)
	out = replaceStandaloneRoot(out, scope)
	out = strings.ReplaceAll(out, editorWrapper, scope)
	out = selfReferencePattern.ReplaceAllStringFunc(out, func(decl string) string {
		m := selfReferencePattern.FindStringSubmatch(decl)
		if strings.EqualFold(m[1], m[2]) {
			return ""
		}
		return decl
	})
	return out
}

// replaceStandaloneRoot swaps every :root that is not the prefix of a longer
// identifier such as :root-ish.
func replaceStandaloneRoot(css, scope string) string {
	const token = ":root"

	var b strings.Builder
	rest := css
	for {
		i := strings.Index(rest, token)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := i + len(token)
		b.WriteString(rest[:i])
		if end < len(rest) && isIdentByte(rest[end]) {
			b.WriteString(token)
		} else {
			b.WriteString(scope)
		}
		rest = rest[end:]
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
