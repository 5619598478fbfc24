package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	statePath  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "Stylekit compiles utility classes into CSS against switchable themes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ~/.stylekit/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.statePath, "state", "", "Path to state file (default ~/.stylekit/state.json)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newParseCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newColorCmd(flags))
	cmd.AddCommand(newSizeCmd(flags))
	cmd.AddCommand(newCacheCmd(flags))
	cmd.AddCommand(newModulesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
