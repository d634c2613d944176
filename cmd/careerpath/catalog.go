package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/careerpath/internal/catalog"
	"github.com/jonathan/careerpath/internal/observability"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect catalog documents",
	}
	cmd.AddCommand(newCatalogExportCmd(), newCatalogValidateCmd())
	return cmd
}

func newCatalogExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in catalog as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(catalog.Default(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal catalog: %w", err)
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "catalog written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file against the catalog schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readCatalog(args[0])
			if err != nil {
				observability.NewPrinter(cmd.ErrOrStderr()).PrintValidationErrors(err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			observability.NewPrinter(cmd.OutOrStdout()).PrintCatalogCounts("CATALOG", data.Counts())
			return nil
		},
	}
}
