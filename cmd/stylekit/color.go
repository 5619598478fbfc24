package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type colorOptions struct {
	rgb   bool
	alpha float64
}

func newColorCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &colorOptions{}

	cmd := &cobra.Command{
		Use:   "color <value>",
		Short: "Resolve a color name or literal against the active theme",
		Example: `  stylekit color primary
  stylekit color primary --alpha 0.5
  stylekit color "#1677FF" --rgb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, appOptions{})
			if err != nil {
				return err
			}

			value := args[0]
			switch {
			case cmd.Flags().Changed("alpha"):
				value = app.Engine.Color2RGBA(value, opts.alpha)
			case opts.rgb:
				value = app.Engine.Color2RGB(value)
			default:
				value = app.Engine.GetColor(value)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.rgb, "rgb", false, "Print as rgb(r, g, b)")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 1, "Print as rgba(r, g, b, alpha)")

	return cmd
}
