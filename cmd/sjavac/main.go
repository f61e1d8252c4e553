package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

var version = "dev"

const usageLine = "Usage: sjavac <source_file.sjava>"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	setupLogging(os.Stderr, false)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The root command keeps the plain
// verifier contract: one positional argument, the status on stdout.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sjavac <source_file.sjava>",
		Short: "sjavac - static verifier for s-Java sources",
		Long: `sjavac checks an s-Java source file against the language rules and
prints 0 (valid), 1 (syntax or semantic error) or 2 (usage or I/O error).`,
		Version:            version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := runVerify(cmd.Context(), args, stderr)
			fmt.Fprintln(stdout, int(status))
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(initCmd(stdout))
	rootCmd.AddCommand(classifyCmd(stdout))
	rootCmd.AddCommand(batchCmd(stdout))
	rootCmd.AddCommand(watchCmd(stdout))
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// runVerify checks one file and writes the diagnostic, if any, to stderr
func runVerify(ctx context.Context, args []string, stderr io.Writer) verifier.Status {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "%s: %s\n", verifier.KindUsage.Label(), usageLine)
		return verifier.KindUsage.Status()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	report := verifier.NewVerifier().VerifyFile(ctx, args[0])
	if d := report.Diagnostic(); d != "" {
		fmt.Fprintln(stderr, d)
	}
	return report.Status
}

func setupLogging(w io.Writer, verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func addVerboseFlag(cmd *cobra.Command, verbose *bool) {
	cmd.Flags().BoolVarP(verbose, "verbose", "v", false, "Enable debug logging")
}
