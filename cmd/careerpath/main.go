// Package main provides the entry point for the careerpath HTTP API server and its
// maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "careerpath",
		Short:         "Career guidance HTTP API server",
		Long:          "careerpath serves career roadmaps, progress tracking, resumes, job applications and interview preparation over a JSON REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Path to a JSON config file (environment variables win)")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd(), newCatalogCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
