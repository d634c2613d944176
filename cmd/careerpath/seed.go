package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/careerpath/internal/catalog"
	"github.com/jonathan/careerpath/internal/db"
	"github.com/jonathan/careerpath/internal/observability"
	"github.com/jonathan/careerpath/internal/schemas"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the catalog into the document store",
		Long: `Write the built-in catalog, or a catalog file from --file, into the remote catalog collections.
Collections that already hold documents are left alone unless --force is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readCatalog(file)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			dsn, err := requireDatabase(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := db.Migrate(ctx, dsn); err != nil {
				return err
			}
			store, err := db.Connect(ctx, dsn)
			if err != nil {
				return err
			}
			defer store.Close()

			results, err := store.Seed(ctx, data, force)
			if err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintSeedResults(results)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Catalog JSON file (default: built-in catalog)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace collections that already hold documents")
	return cmd
}

// readCatalog loads a schema-checked catalog file, or the built-in catalog when path is empty.
func readCatalog(path string) (catalog.Data, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog.Data{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if err := schemas.ValidateCatalog(raw); err != nil {
		return catalog.Data{}, fmt.Errorf("catalog file %s is invalid: %w", path, err)
	}

	var data catalog.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return catalog.Data{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return data, nil
}
