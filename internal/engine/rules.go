package engine

import (
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// rule pairs a predicate over a trimmed token with the resolver used when it
// matches. Rules are tried in order; the first match wins even when its
// resolver produces nothing.
type rule struct {
	name    string
	match   func(token string) bool
	resolve func(token string, t *style.Theme) string
}

var roundedSizes = map[string]bool{"xs": true, "sm": true, "md": true, "lg": true, "circle": true}

var borderVariants = map[string]bool{style.ThemeLight: true, style.ThemeDark: true}

var colorExclusions = map[string][]string{
	"bg-":   {"filter", "repeat", "size", "position"},
	"text-": {"align", "decoration"},
}

var textSizeKeywords = map[string]bool{
	"text-xs": true, "text-sm": true, "text-md": true, "text-lg": true,
	"text-xl": true, "text-xxl": true, "text-2xl": true,
}

var rules = []rule{
	{name: "rounded", match: isThemedRounded, resolve: resolveRounded},
	{name: "border", match: isThemedBorder, resolve: resolveBorder},
	{name: "background", match: isColorToken("bg-"), resolve: colorResolver("bg-", "background")},
	{name: "text", match: isTextColor, resolve: colorResolver("text-", "color")},
	{name: "theme", match: func(string) bool { return true }, resolve: resolveThemeStyle},
}

// RuleNames lists the dispatch rules in priority order.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

func matchRule(token string) rule {
	for _, r := range rules {
		if r.match(token) {
			return r
		}
	}
	return rules[len(rules)-1]
}

func isThemedRounded(token string) bool {
	return strings.HasPrefix(token, "rounded-") && roundedSizes[lastSegment(token)]
}

func isThemedBorder(token string) bool {
	if token == "border" {
		return true
	}
	return strings.HasPrefix(token, "border-") && borderVariants[lastSegment(token)]
}

func isColorToken(prefix string) func(string) bool {
	return func(token string) bool {
		if !strings.HasPrefix(token, prefix) {
			return false
		}
		for _, family := range colorExclusions[prefix] {
			if strings.Contains(token, family) {
				return false
			}
		}
		return true
	}
}

func isTextColor(token string) bool {
	return isColorToken("text-")(token) && !textSizeKeywords[token]
}

// stylePrefix returns every dash segment but the last, plus a trailing dash:
// "rounded-t-md" becomes "rounded-t-".
func stylePrefix(token string) string {
	i := strings.LastIndex(token, "-")
	if i < 0 {
		return "-"
	}
	return token[:i+1]
}

func lastSegment(token string) string {
	return token[strings.LastIndex(token, "-")+1:]
}
