// Package diff renders line-oriented diffs of compiled CSS.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Declarations splits a compiled fragment such as "a: 1;b: 2;" into one
// declaration per line.
func Declarations(css string) []string {
	var out []string
	for _, part := range strings.Split(css, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part+";")
	}
	return out
}

// CSS compares two compiled fragments declaration by declaration and returns
// a unified diff. Identical declaration lists produce an empty string.
func CSS(from, to, fromLabel, toLabel string) string {
	return Unified(strings.Join(Declarations(from), "\n"), strings.Join(Declarations(to), "\n"), fromLabel, toLabel)
}

// Unified renders a line-based unified diff between expected and actual.
// Returns an empty string when the inputs are identical. Output beyond
// 10,000 lines is truncated with a marker.
func Unified(expected, actual, expectedLabel, actualLabel string) string {
	if expected == actual {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(withNewline(expected), withNewline(actual))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expected), countLines(actual))

	for _, d := range diffs {
		marker := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = "-"
		case diffmatchpatch.DiffInsert:
			marker = "+"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			buf.WriteString(marker)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(withNewline(s), "\n")
}
