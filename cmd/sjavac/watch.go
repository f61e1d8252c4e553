package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/QTest-hq/sjavac/internal/verifier"
	"github.com/QTest-hq/sjavac/internal/watcher"
	"github.com/QTest-hq/sjavac/internal/worker"
)

func watchCmd(stdout io.Writer) *cobra.Command {
	var (
		verbose  bool
		debounce int
		initial  bool
	)

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-verify s-Java files whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)
			ctx := cmd.Context()

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := loadProjectConfig(root, cmd, "", 0)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debounce") {
				cfg.Watch.DebounceMS = debounce
			}

			matcher, err := cfg.Matcher()
			if err != nil {
				return err
			}
			pool, err := worker.NewPool(worker.PoolConfig{Workers: cfg.Workers})
			if err != nil {
				return err
			}

			if initial {
				summary, err := pool.Batch(ctx, root, matcher)
				if err != nil {
					return err
				}
				for _, r := range summary.Reports {
					printReport(stdout, r)
				}
			}

			w, err := watcher.NewWatcher(root, matcher, time.Duration(cfg.Watch.DebounceMS)*time.Millisecond, func(paths []string) {
				reports, removed, err := watcher.Reverify(ctx, pool, root, paths)
				if err != nil {
					log.Warn().Err(err).Msg("re-verification interrupted")
					return
				}
				for _, name := range removed {
					log.Debug().Str("file", name).Msg("removed")
				}
				for _, r := range reports {
					printReport(stdout, r)
				}
			})
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer w.Close()

			if err := w.Start(); err != nil {
				return fmt.Errorf("failed to watch %s: %w", root, err)
			}
			log.Info().
				Str("root", root).
				Int("debounce_ms", cfg.Watch.DebounceMS).
				Int("workers", pool.Workers()).
				Msg("watching")

			select {
			case <-ctx.Done():
			case <-w.Done():
			}
			return nil
		},
	}

	addVerboseFlag(cmd, &verbose)
	cmd.Flags().IntVar(&debounce, "debounce", 0, "Quiet period in milliseconds before re-verifying")
	cmd.Flags().BoolVar(&initial, "initial", true, "Verify every file once before watching")

	return cmd
}

func printReport(w io.Writer, r *verifier.Report) {
	if !r.Valid() {
		fmt.Fprintf(w, "%d %s  %s\n", r.Status, r.File, r.Diagnostic())
		return
	}
	fmt.Fprintf(w, "%d %s\n", r.Status, r.File)
}
