package engine

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

var roundedSides = map[string][]string{
	"t": {"top-left", "top-right"},
	"r": {"top-right", "bottom-right"},
	"b": {"bottom-left", "bottom-right"},
	"l": {"top-left", "bottom-left"},
}

var roundedCorners = map[string]string{
	"tl": "top-left",
	"tr": "top-right",
	"bl": "bottom-left",
	"br": "bottom-right",
}

var borderSides = map[string][]string{
	"t": {"top"},
	"r": {"right"},
	"b": {"bottom"},
	"l": {"left"},
	"x": {"left", "right"},
	"y": {"top", "bottom"},
}

// resolveRounded handles rounded-md, rounded-t-md and rounded-tl-md against
// the theme's radius scale.
func resolveRounded(token string, t *style.Theme) string {
	if value, ok := themeLiteral(t, token); ok {
		return fmt.Sprintf("border-radius: %s;", value)
	}

	side := strings.TrimSuffix(strings.TrimPrefix(stylePrefix(token), "rounded-"), "-")
	value, ok := themeLiteral(t, "rounded-"+lastSegment(token))
	if !ok {
		return ""
	}

	if corners, ok := roundedSides[side]; ok {
		var b strings.Builder
		for _, corner := range corners {
			fmt.Fprintf(&b, "border-%s-radius: %s;", corner, value)
		}
		return b.String()
	}
	if corner, ok := roundedCorners[side]; ok {
		return fmt.Sprintf("border-%s-radius: %s;", corner, value)
	}
	return ""
}

// resolveBorder handles border, border-light and their side and axis forms.
func resolveBorder(token string, t *style.Theme) string {
	if value, ok := themeLiteral(t, token); ok {
		return fmt.Sprintf("border: %s;", value)
	}
	if token == "border" {
		return ""
	}

	side := strings.TrimSuffix(strings.TrimPrefix(stylePrefix(token), "border-"), "-")
	sides, ok := borderSides[side]
	if !ok {
		return ""
	}

	value, ok := themeLiteral(t, "border-"+lastSegment(token))
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, s := range sides {
		fmt.Fprintf(&b, "border-%s: %s;", s, value)
	}
	return b.String()
}

// colorResolver resolves bg-* and text-* tokens to a theme color, falling back
// to the module handler for literal colors and magnitudes.
func colorResolver(prefix, property string) func(string, *style.Theme) string {
	return func(token string, t *style.Theme) string {
		if value, ok := themeLiteral(t, token); ok {
			if strings.Contains(value, ";") {
				return value
			}
			return fmt.Sprintf("%s: %s;", property, value)
		}

		name := strings.TrimPrefix(token, prefix)
		if !style.IsColorLiteral(name) && !style.HasUnit(name) {
			if value, ok := themeLiteral(t, name); ok {
				return fmt.Sprintf("%s: %s;", property, value)
			}
		}

		if handler, ok := t.Handler(prefix); ok {
			return handler(token)
		}
		return ""
	}
}

// resolveThemeStyle is the generic lookup: complete literals are returned
// verbatim, alias literals are fed back through the prefix handler, and
// anything else goes to the prefix handler directly.
func resolveThemeStyle(token string, t *style.Theme) string {
	prefix := stylePrefix(token)

	if value, ok := themeLiteral(t, token); ok {
		if strings.Contains(value, ";") {
			return value
		}
		if handler, ok := t.Handler(prefix); ok {
			return handler(prefix + value)
		}
	}

	if handler, ok := t.Handler(prefix); ok {
		return handler(token)
	}
	return ""
}

func themeLiteral(t *style.Theme, key string) (string, bool) {
	value, ok := t.Literal(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
