package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/QTest-hq/sjavac/internal/config"
)

func initCmd(stdout io.Writer) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default " + config.ProjectFile,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			path := filepath.Join(dir, config.ProjectFile)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			if err := config.SaveProjectConfig(dir, config.DefaultProjectConfig()); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Fprintf(stdout, "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing project file")

	return cmd
}
