package diff

import (
	"fmt"
	"strings"
	"testing"
)

func TestUnified_IdenticalContent(t *testing.T) {
	result := Unified("line1\nline2\n", "line1\nline2\n", "expected", "actual")

	if result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestUnified_SingleLineChange(t *testing.T) {
	result := Unified("line1\nline2\nline3\n", "line1\nmodified\nline3\n", "expected", "actual")

	if !strings.Contains(result, "--- expected") || !strings.Contains(result, "+++ actual") {
		t.Error("Diff should contain unified diff headers")
	}
	if !strings.Contains(result, "-line2\n") {
		t.Error("Diff should show removed line with - prefix")
	}
	if !strings.Contains(result, "+modified\n") {
		t.Error("Diff should show added line with + prefix")
	}
	if !strings.Contains(result, " line1\n") || !strings.Contains(result, " line3\n") {
		t.Error("Diff should keep unchanged lines as context")
	}
	if !strings.Contains(result, "@@ -1,3 +1,3 @@") {
		t.Errorf("Unexpected hunk header in:\n%s", result)
	}
}

func TestUnified_MissingTrailingNewline(t *testing.T) {
	result := Unified("a\nb", "a\nc", "x", "y")

	if !strings.Contains(result, "-b\n") || !strings.Contains(result, "+c\n") {
		t.Errorf("Unexpected diff:\n%s", result)
	}
}

func TestUnified_Truncation(t *testing.T) {
	var expected, actual strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&expected, "old%d\n", i)
		fmt.Fprintf(&actual, "new%d\n", i)
	}

	result := Unified(expected.String(), actual.String(), "a", "b")

	if !strings.HasSuffix(result, truncateMessage+"\n") {
		t.Error("Large diffs should end with the truncation marker")
	}
}

func TestDeclarations(t *testing.T) {
	got := Declarations("display: flex; flex-direction: row;background: #1677FF;")
	want := []string{"display: flex;", "flex-direction: row;", "background: #1677FF;"}

	if len(got) != len(want) {
		t.Fatalf("Declarations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Declarations()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if len(Declarations("")) != 0 {
		t.Error("Empty CSS should have no declarations")
	}
}

func TestCSS(t *testing.T) {
	light := "padding: 20rpx;background: #1677FF;"
	dark := "padding: 20rpx;background: #1668DC;"

	result := CSS(light, dark, "light", "dark")

	if !strings.Contains(result, " padding: 20rpx;\n") {
		t.Errorf("Shared declarations should be context lines:\n%s", result)
	}
	if !strings.Contains(result, "-background: #1677FF;\n") || !strings.Contains(result, "+background: #1668DC;\n") {
		t.Errorf("Changed declaration missing:\n%s", result)
	}

	if CSS(light, "padding: 20rpx; background: #1677FF;", "a", "b") != "" {
		t.Error("Whitespace between declarations should not produce a diff")
	}
}
