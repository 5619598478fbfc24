package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

func newModulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules [name]",
		Short: "List the built-in style modules or the entries of one module",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if len(args) == 0 {
				fmt.Fprintln(writer, "MODULE\tENTRIES")
				for _, name := range style.ModuleNames() {
					module, _ := style.Module(name)
					fmt.Fprintf(writer, "%s\t%d\n", name, len(module))
				}
				return writer.Flush()
			}

			module, ok := style.Module(args[0])
			if !ok {
				return newCommandError("list modules", fmt.Sprintf("looking up %q", args[0]), errors.New("unknown module"), "Run 'stylekit modules' to view module names.")
			}

			fmt.Fprintln(writer, "KEY\tKIND\tVALUE")
			for _, key := range module.Keys() {
				value := module[key]
				fmt.Fprintf(writer, "%s\t%s\t%s\n", key, value.Kind(), value)
			}
			return writer.Flush()
		},
	}

	return cmd
}
