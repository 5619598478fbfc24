package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSizeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size <value>",
		Short: "Resolve a size keyword or number against the active theme",
		Example: `  stylekit size 24
  stylekit size text-md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, appOptions{})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.Engine.GetSize(args[0]))
			return nil
		},
	}

	return cmd
}
