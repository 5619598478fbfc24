package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type parseOptions struct {
	theme      string
	explain    bool
	jsonOutput bool
}

func newParseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <input>...",
		Short: "Compile utility classes or literal declarations into CSS",
		Long: `Compile each argument and print the concatenated CSS.

Arguments containing ':' are treated as literal declaration lists; all others
are space separated utility classes resolved against the active theme.`,
		Example: `  stylekit parse "hflex hflex-hvcenter p-20"
  stylekit parse --theme dark bg-primary "color: red"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Resolve against this theme without changing the saved theme")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Show which rule resolved each token")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type parseJSONPayload struct {
	Theme       string           `json:"theme"`
	CSS         string           `json:"css"`
	Resolutions []explainedToken `json:"resolutions,omitempty"`
}

func runParse(cmd *cobra.Command, rootFlags *rootFlags, opts *parseOptions, inputs []string) error {
	app, err := newAppContext(cmd, rootFlags, appOptions{ephemeral: opts.theme != ""})
	if err != nil {
		return err
	}

	if opts.theme != "" {
		if err := app.Engine.SetCurrentTheme(opts.theme); err != nil {
			return newCommandError("parse", fmt.Sprintf("selecting theme %q", opts.theme), err, "Run 'stylekit theme list' to view registered themes.")
		}
	}

	css := app.Engine.Parse(inputs...)

	if opts.jsonOutput {
		payload := parseJSONPayload{Theme: app.Engine.CurrentTheme(), CSS: css}
		if opts.explain {
			payload.Resolutions = explainInputs(app, inputs)
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	if opts.explain {
		writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "TOKEN\tRULE\tCSS")
		for _, r := range explainInputs(app, inputs) {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", r.Token, valueOrFallback(r.Rule, "-"), valueOrFallback(r.CSS, "(unresolved)"))
		}
		if err := writer.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	fmt.Fprintln(cmd.OutOrStdout(), css)
	return nil
}

type explainedToken struct {
	Token string `json:"token"`
	Rule  string `json:"rule"`
	CSS   string `json:"css"`
}

func explainInputs(app *AppContext, inputs []string) []explainedToken {
	var out []explainedToken
	for _, input := range inputs {
		if isLiteralInput(input) {
			out = append(out, explainedToken{Token: input, Rule: "literal", CSS: app.Engine.Parse(input)})
			continue
		}
		for _, r := range app.Engine.Explain(input) {
			out = append(out, explainedToken{Token: r.Token, Rule: r.Rule, CSS: r.CSS})
		}
	}
	return out
}
