package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

type themeShowOptions struct {
	jsonOutput bool
	all        bool
}

type themeShowPayload struct {
	Name     string            `json:"name"`
	Identity string            `json:"identity"`
	Source   string            `json:"source,omitempty"`
	Literals map[string]string `json:"literals"`
}

func newThemeShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeShowOptions{}

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a theme's palette and scale (defaults to the active theme)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, appOptions{})
			if err != nil {
				return err
			}

			name := app.Engine.CurrentTheme()
			if len(args) == 1 {
				name = args[0]
			}

			t, ok := app.Engine.Theme(name)
			if !ok {
				return newCommandError("show theme", fmt.Sprintf("looking up %q", name), apperrors.NewNotFoundError("theme", name), "Run 'stylekit theme list' to view registered themes.")
			}

			entries := themeEntries(t, opts.all)

			if opts.jsonOutput {
				payload := themeShowPayload{Name: name, Identity: t.Identity(), Source: app.Sources[name], Literals: make(map[string]string, len(entries))}
				for _, e := range entries {
					payload.Literals[e.key] = e.value
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}

			renderThemeShow(cmd.OutOrStdout(), name, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Include module literals such as hflex")

	return cmd
}

type themeEntry struct {
	key   string
	value string
}

// themeEntries returns the theme's literal values. Unless all is set,
// complete declarations contributed by the style modules are skipped.
func themeEntries(t *style.Theme, all bool) []themeEntry {
	var out []themeEntry
	for _, key := range t.Keys() {
		value, ok := t.Literal(key)
		if !ok {
			continue
		}
		if !all && strings.Contains(value, ";") {
			continue
		}
		out = append(out, themeEntry{key: key, value: value})
	}
	return out
}

func renderThemeShow(out io.Writer, name string, entries []themeEntry) {
	renderer := lipgloss.NewRenderer(out)
	header := renderer.NewStyle().Bold(true).Underline(true)
	keyStyle := renderer.NewStyle().Width(longestKey(entries) + 2)
	swatchBase := renderer.NewStyle().Width(9).Align(lipgloss.Center)

	fmt.Fprintln(out, header.Render(displayName(name)))

	colorize := supportsColor(out)
	for _, e := range entries {
		line := keyStyle.Render(e.key) + e.value
		if colorize {
			if swatch, ok := renderSwatch(swatchBase, e.value); ok {
				line = keyStyle.Render(e.key) + swatch + " " + e.value
			}
		}
		fmt.Fprintln(out, line)
	}
}

// renderSwatch paints a block in the entry's color with a readable label.
func renderSwatch(base lipgloss.Style, value string) (string, bool) {
	c, err := colorful.Hex(value)
	if err != nil {
		return "", false
	}

	foreground := "#FFFFFF"
	if l, _, _ := c.Lab(); l > 0.6 {
		foreground = "#000000"
	}

	return base.
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(foreground)).
		Render("Aa"), true
}

func longestKey(entries []themeEntry) int {
	longest := 0
	for _, e := range entries {
		if len(e.key) > longest {
			longest = len(e.key)
		}
	}
	return longest
}
