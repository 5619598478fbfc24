package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName turns "high-contrast" into "High Contrast".
func displayName(name string) string {
	replacer := strings.NewReplacer("-", " ", "_", " ")
	return titleCaser.String(replacer.Replace(name))
}

func isLiteralInput(input string) bool {
	return strings.Contains(input, ":")
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
