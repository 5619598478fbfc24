package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type cacheStatsOptions struct {
	repeat     int
	jsonOutput bool
}

func newCacheCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the style cache",
	}

	cmd.AddCommand(newCacheStatsCmd(rootFlags))

	return cmd
}

func newCacheStatsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &cacheStatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats [input]...",
		Short: "Parse the inputs and report per tier cache usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, appOptions{})
			if err != nil {
				return err
			}

			for i := 0; i < opts.repeat; i++ {
				for _, input := range args {
					app.Engine.Parse(input)
				}
			}

			stats := app.Engine.CacheStats()
			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(stats)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "TIER\tENTRIES\tHITS\tMISSES")
			for _, s := range stats {
				fmt.Fprintf(writer, "%s\t%d\t%d\t%d\n", s.Name, s.Entries, s.Hits, s.Misses)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().IntVar(&opts.repeat, "repeat", 2, "Number of times to parse each input")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
