package engine

import "strings"

// isLiteralCSS reports whether input is a declaration list rather than tokens.
func isLiteralCSS(input string) bool {
	return strings.Contains(input, ":")
}

// parseLiteralCSS normalizes "a:b; c : d" to "a: b;c: d;". Segments without a
// colon are dropped.
func parseLiteralCSS(input string) string {
	var b strings.Builder
	for _, segment := range strings.Split(input, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		property, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		b.WriteString(strings.TrimSpace(property))
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(value))
		b.WriteByte(';')
	}
	return b.String()
}
