package style

import (
	"fmt"
	"strings"
)

// IsColorLiteral reports whether s is already a CSS color rather than a theme key.
func IsColorLiteral(s string) bool {
	return strings.HasPrefix(s, "#") || strings.Contains(s, "rgb")
}

func backgroundHandler(token string) string {
	return fmt.Sprintf("background: %s;", strings.TrimPrefix(token, "bg-"))
}

// textHandler resolves text-<value> to a color when the value is a color
// literal and to a font size otherwise.
func textHandler(token string) string {
	value := strings.TrimPrefix(token, "text-")
	if IsColorLiteral(value) {
		return fmt.Sprintf("color: %s;", value)
	}
	return fmt.Sprintf("font-size: %s;", Magnitude(token, "text-", ScalableUnit))
}

// visualModule covers opacity, filters, shadows, background and text color.
func visualModule() Config {
	cfg := Config{
		"opacity-":   Func(NumericHandler("opacity", "opacity-", func(v float64) float64 { return v / 100 })),
		"bg-filter-": Func(FilterHandler("backdrop-filter", "bg-filter-", "blur")),
		"filter-":    Func(FilterHandler("filter", "filter-", "blur")),
		"shadow-":    Func(SimpleHandler("box-shadow", "shadow-")),
		"bg-":        Func(backgroundHandler),
		"text-":      Func(textHandler),
	}

	positions := staticProperties("background-position", map[string]string{
		"bg-center": "center",
		"bg-top":    "top",
		"bg-bottom": "bottom",
		"bg-left":   "left",
		"bg-right":  "right",
	})
	repeats := staticProperties("background-repeat", map[string]string{
		"bg-norepeat": "no-repeat",
		"bg-repeat":   "repeat",
		"bg-repeat-x": "repeat-x",
		"bg-repeat-y": "repeat-y",
	})
	sizes := staticProperties("background-size", map[string]string{
		"bg-cover":   "cover",
		"bg-contain": "contain",
		"bg-auto":    "auto",
	})

	return Merge(cfg, positions, repeats, sizes)
}
