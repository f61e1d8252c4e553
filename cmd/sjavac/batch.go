package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/QTest-hq/sjavac/internal/config"
	"github.com/QTest-hq/sjavac/internal/emitter"
	"github.com/QTest-hq/sjavac/internal/verifier"
	"github.com/QTest-hq/sjavac/internal/worker"
)

func batchCmd(stdout io.Writer) *cobra.Command {
	var (
		verbose bool
		format  string
		workers int
		strict  bool
		output  string
	)

	registry := emitter.NewRegistry()

	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Verify every s-Java file under a directory",
		Long: `Walk a directory, select files with the include and exclude globs of
its .sjavac.yaml (if any) and verify them concurrently.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := loadProjectConfig(root, cmd, format, workers)
			if err != nil {
				return err
			}

			em, err := registry.Get(cfg.Format)
			if err != nil {
				return err
			}

			matcher, err := cfg.Matcher()
			if err != nil {
				return err
			}

			pool, err := worker.NewPool(worker.PoolConfig{Workers: cfg.Workers})
			if err != nil {
				return err
			}

			summary, err := pool.Batch(cmd.Context(), root, matcher)
			if err != nil {
				return err
			}

			if output == "" {
				if err := em.Emit(stdout, summary); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
			} else {
				path, err := writeReport(output, em, summary)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "Report written to %s (%d files, %d valid)\n", path, summary.Total, summary.Valid)
			}

			if strict && summary.Status() != 0 {
				return fmt.Errorf("%d of %d files failed verification", summary.Invalid+summary.Errors, summary.Total)
			}
			return nil
		},
	}

	addVerboseFlag(cmd, &verbose)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format ("+strings.Join(registry.List(), ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory to write the report to instead of stdout")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent verifications (0 = number of CPUs)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any file fails")

	return cmd
}

// writeReport renders the summary into dir/report<ext>
func writeReport(dir string, em emitter.Emitter, summary *verifier.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := em.Emit(&buf, summary); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	path := filepath.Join(dir, "report"+em.FileExtension())
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// loadProjectConfig reads the project file in root and applies the flags
// that were set explicitly
func loadProjectConfig(root string, cmd *cobra.Command, format string, workers int) (*config.ProjectConfig, error) {
	cfg, err := config.LoadProjectConfig(root)
	if err != nil {
		return nil, err
	}

	overrides := &config.ProjectConfig{}
	if cmd.Flags().Changed("format") {
		overrides.Format = format
	}
	if cmd.Flags().Changed("workers") {
		overrides.Workers = workers
	}
	cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
