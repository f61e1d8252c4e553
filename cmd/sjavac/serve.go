package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QTest-hq/sjavac/internal/api"
	"github.com/QTest-hq/sjavac/internal/config"
)

func serveCmd() *cobra.Command {
	var (
		verbose bool
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve verification over HTTP",
		Long:  `Start the HTTP API. Settings come from SJAVAC_* environment variables.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)

			// Load configuration
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			srv, err := api.NewServer(cfg)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	addVerboseFlag(cmd, &verbose)
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on (overrides SJAVAC_PORT)")

	return cmd
}
