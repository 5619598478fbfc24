package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage themes",
	}

	cmd.AddCommand(newThemeListCmd(rootFlags))
	cmd.AddCommand(newThemeShowCmd(rootFlags))
	cmd.AddCommand(newThemeUseCmd(rootFlags))
	cmd.AddCommand(newThemeAddCmd(rootFlags))
	cmd.AddCommand(newThemeRemoveCmd(rootFlags))
	cmd.AddCommand(newThemeDiffCmd(rootFlags))

	return cmd
}

type themeListOptions struct {
	jsonOutput bool
}

type themeJSON struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Active      bool   `json:"active"`
	Builtin     bool   `json:"builtin"`
	Source      string `json:"source,omitempty"`
	Entries     int    `json:"entries"`
}

type themeListPayload struct {
	Version string      `json:"version"`
	Count   int         `json:"count"`
	Current string      `json:"current"`
	Themes  []themeJSON `json:"themes"`
}

func newThemeListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, appOptions{})
			if err != nil {
				return err
			}

			current := app.Engine.CurrentTheme()
			payload := themeListPayload{Version: "1.0", Current: current}
			for _, name := range app.Engine.ThemeNames() {
				t, _ := app.Engine.Theme(name)
				payload.Themes = append(payload.Themes, themeJSON{
					Name:        name,
					DisplayName: displayName(name),
					Active:      name == current,
					Builtin:     theme.IsBuiltin(name),
					Source:      app.Sources[name],
					Entries:     t.Len(),
				})
			}
			payload.Count = len(payload.Themes)

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ACTIVE\tNAME\tDISPLAY NAME\tENTRIES\tSOURCE")
			for _, t := range payload.Themes {
				marker := ""
				if t.Active {
					marker = "*"
				}
				source := t.Source
				if t.Builtin && source == "" {
					source = "(built-in)"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n", marker, t.Name, t.DisplayName, t.Entries, source)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newThemeUseCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <name>",
		Short: "Set and save the active theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, appOptions{})
			if err != nil {
				return err
			}

			if err := app.Engine.SetCurrentTheme(args[0]); err != nil {
				return newCommandError("use theme", fmt.Sprintf("activating %q", args[0]), err, "Run 'stylekit theme list' to view registered themes.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Current theme: %s\n", args[0])
			return nil
		},
	}

	return cmd
}

type themeAddOptions struct {
	use bool
}

func newThemeAddCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <theme-file>",
		Short: "Register a YAML or TOML theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeAdd(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.use, "use", false, "Activate the theme after adding it")

	return cmd
}

func runThemeAdd(cmd *cobra.Command, rootFlags *rootFlags, opts *themeAddOptions, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return newCommandError("add theme", "resolving theme file path", err, "Provide a valid file path.")
	}

	def, err := loadThemeDefinition(absPath)
	if err != nil {
		return newCommandError("add theme", "loading theme file", err, "Check the file against the theme file format and retry.")
	}

	app, err := newAppContext(cmd, rootFlags, appOptions{})
	if err != nil {
		return err
	}

	if existing, ok := app.Sources[def.Name]; ok && existing != absPath {
		return newCommandError("add theme", fmt.Sprintf("registering %q", def.Name),
			fmt.Errorf("theme %q is already defined by %s", def.Name, existing),
			fmt.Sprintf("Remove it first with 'stylekit theme remove %s'.", def.Name))
	}

	if err := app.Engine.RegisterTheme(def.Name, def.Config); err != nil {
		return newCommandError("add theme", fmt.Sprintf("registering %q", def.Name), err, "Check the theme name and tokens.")
	}

	if _, ok := app.Sources[def.Name]; !ok {
		app.Config.ThemeFiles = append(app.Config.ThemeFiles, absPath)
		if err := config.Save(app.ConfigPath, app.Config); err != nil {
			return newCommandError("add theme", "saving configuration", err, "Check disk space and file permissions, then retry.")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added theme %q from %s\n", def.Name, absPath)

	if opts.use {
		if err := app.Engine.SetCurrentTheme(def.Name); err != nil {
			return newCommandError("add theme", fmt.Sprintf("activating %q", def.Name), err, "Run 'stylekit theme use' to retry.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Current theme: %s\n", def.Name)
	}

	return nil
}

func newThemeRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Unregister a custom theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeRemove(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runThemeRemove(cmd *cobra.Command, rootFlags *rootFlags, name string) error {
	if strings.TrimSpace(name) == "" {
		return newCommandError("remove theme", "validating theme name", errors.New("theme name cannot be empty"), "Provide the theme name you wish to remove.")
	}

	app, err := newAppContext(cmd, rootFlags, appOptions{})
	if err != nil {
		return err
	}

	if err := app.Engine.UnregisterTheme(name); err != nil {
		var protected *apperrors.ProtectedResourceError
		if errors.As(err, &protected) {
			return newCommandError("remove theme", fmt.Sprintf("removing %q", name), err, "Built-in themes can be overridden with 'stylekit theme add' but never removed.")
		}
		return newCommandError("remove theme", fmt.Sprintf("removing %q", name), err, "Run 'stylekit theme list' to view registered themes.")
	}

	source, ok := app.Sources[name]
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Theme %q is not registered.\n", name)
		return nil
	}

	kept := app.Config.ThemeFiles[:0]
	for _, file := range app.Config.ThemeFiles {
		if file != source {
			kept = append(kept, file)
		}
	}
	app.Config.ThemeFiles = kept

	if err := config.Save(app.ConfigPath, app.Config); err != nil {
		return newCommandError("remove theme", "saving configuration", err, "Check disk space and file permissions, then retry.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed theme %q\n", name)
	fmt.Fprintf(cmd.OutOrStdout(), "Current theme: %s\n", app.Engine.CurrentTheme())
	return nil
}

func newThemeDiffCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <from> <to> [input]...",
		Short: "Compare two themes",
		Long: `Compare two themes.

Without inputs the literal entries of both themes are compared. With inputs,
the CSS compiled under each theme is compared declaration by declaration.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeDiff(cmd, rootFlags, args[0], args[1], args[2:])
		},
	}

	return cmd
}

func runThemeDiff(cmd *cobra.Command, rootFlags *rootFlags, from, to string, inputs []string) error {
	app, err := newAppContext(cmd, rootFlags, appOptions{ephemeral: true})
	if err != nil {
		return err
	}

	var result string
	if len(inputs) == 0 {
		fromTheme, ok := app.Engine.Theme(from)
		if !ok {
			return newCommandError("diff themes", fmt.Sprintf("looking up %q", from), apperrors.NewNotFoundError("theme", from), "Run 'stylekit theme list' to view registered themes.")
		}
		toTheme, ok := app.Engine.Theme(to)
		if !ok {
			return newCommandError("diff themes", fmt.Sprintf("looking up %q", to), apperrors.NewNotFoundError("theme", to), "Run 'stylekit theme list' to view registered themes.")
		}
		result = diff.Unified(literalListing(fromTheme), literalListing(toTheme), from, to)
	} else {
		compiled := make([]string, 0, 2)
		for _, name := range []string{from, to} {
			if err := app.Engine.SetCurrentTheme(name); err != nil {
				return newCommandError("diff themes", fmt.Sprintf("selecting %q", name), err, "Run 'stylekit theme list' to view registered themes.")
			}
			compiled = append(compiled, app.Engine.Parse(inputs...))
		}
		result = diff.CSS(compiled[0], compiled[1], from, to)
	}

	if result == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No differences between %s and %s\n", from, to)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}

type literalLister interface {
	Keys() []string
	Literal(key string) (string, bool)
}

// literalListing renders every literal entry as "key: value", sorted by key.
func literalListing(t literalLister) string {
	keys := t.Keys()
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		if value, ok := t.Literal(key); ok {
			fmt.Fprintf(&b, "%s: %s\n", key, value)
		}
	}
	return b.String()
}
