package main

import (
	"fmt"

	"github.com/jonathan/careerpath/internal/logger"
	"github.com/jonathan/careerpath/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server backed by PostgreSQL when DATABASE_URL is set and by the in-memory store otherwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer log.Sync()

			store, err := openStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			srv, err := server.New(server.Deps{Store: store, Config: cfg, Logger: log})
			if err != nil {
				store.Close()
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start()
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides PORT)")
	return cmd
}
