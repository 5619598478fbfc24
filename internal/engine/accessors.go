package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

var rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([\d.]+)\s*)?\)$`)

// GetColor returns value when it is already a color literal, otherwise the
// active theme entry named value, otherwise value unchanged.
func (e *Engine) GetColor(value string) string {
	if style.IsColorLiteral(value) {
		return value
	}
	return e.GetThemeStr(value)
}

// GetSize returns values carrying px unchanged, completes bare numbers with
// the scalable unit and otherwise looks value up in the active theme.
func (e *Engine) GetSize(value string) string {
	if strings.Contains(value, "px") {
		return value
	}
	if style.IsNumeric(value) {
		return value + style.ScalableUnit
	}
	return e.GetThemeStr(value)
}

// GetSizeNumber formats n in the scalable unit.
func (e *Engine) GetSizeNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + style.ScalableUnit
}

// GetThemeStr returns the active theme entry named value as a string, or
// value unchanged when there is none.
func (e *Engine) GetThemeStr(value string) string {
	if v, ok := e.registry.CurrentTheme().Lookup(value); ok {
		return v.String()
	}
	return value
}

// Color2RGB resolves color and re-serializes it as rgb(r, g, b). Unrecognized
// formats are returned after theme resolution.
func (e *Engine) Color2RGB(color string) string {
	resolved := e.GetColor(color)
	r, g, b, ok := parseRGB(resolved)
	if !ok {
		return resolved
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// Color2RGBA resolves color and re-serializes it as rgba(r, g, b, alpha).
// Unrecognized formats are returned after theme resolution.
func (e *Engine) Color2RGBA(color string, alpha float64) string {
	resolved := e.GetColor(color)
	r, g, b, ok := parseRGB(resolved)
	if !ok {
		return resolved
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// parseRGB understands #RRGGBB, rgb(r, g, b) and rgba(r, g, b, a).
func parseRGB(color string) (r, g, b int, ok bool) {
	if len(color) == 7 && strings.HasPrefix(color, "#") {
		c, err := colorful.Hex(color)
		if err != nil {
			return 0, 0, 0, false
		}
		r8, g8, b8 := c.RGB255()
		return int(r8), int(g8), int(b8), true
	}

	m := rgbPattern.FindStringSubmatch(strings.TrimSpace(color))
	if m == nil {
		return 0, 0, 0, false
	}
	r, _ = strconv.Atoi(m[1])
	g, _ = strconv.Atoi(m[2])
	b, _ = strconv.Atoi(m[3])
	return r, g, b, true
}
