package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/internal/verifier"
)

func classifyCmd(stdout io.Writer) *cobra.Command {
	var (
		verbose bool
		stats   bool
	)

	cmd := &cobra.Command{
		Use:   "classify <file.sjava>",
		Short: "Print the syntactic kind of every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)

			parsed, err := verifier.NewVerifier().Classify(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", verifier.Classify(err).Label(), err)
			}

			for _, l := range parsed.Lines {
				fmt.Fprintf(stdout, "%4d %-16s %s\n", l.Number, l.Kind, l.Raw)
			}
			if stats {
				printStats(stdout, parsed)
			}
			return nil
		},
	}

	addVerboseFlag(cmd, &verbose)
	cmd.Flags().BoolVar(&stats, "stats", false, "Print line counts per kind")

	return cmd
}

func printStats(w io.Writer, parsed *parser.ParsedFile) {
	counts := parsed.Stats()
	kinds := make([]parser.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Fprintln(w)
	for _, k := range kinds {
		fmt.Fprintf(w, "%-16s %d\n", k, counts[k])
	}
}
