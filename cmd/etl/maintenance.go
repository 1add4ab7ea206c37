package main

import (
	"context"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the bundled default catalog into the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, catalog, err := openCatalog(rootOpts)
			if err != nil {
				return err
			}
			defer db.Close()

			products, source := catalog.Hydrate(context.Background())
			printf("catalog ready: %d products (source: %s)\n", len(products), source)
			return nil
		},
	}
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the product collection and reseed the bundled defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, catalog, err := openCatalog(rootOpts)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := catalog.Reset(context.Background()); err != nil {
				return err
			}

			count, err := catalog.Count(context.Background())
			if err != nil {
				return err
			}
			printf("database reset complete: %d products\n", count)
			return nil
		},
	}
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL products (irreversible)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, catalog, err := openCatalog(rootOpts)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := catalog.Clear(context.Background()); err != nil {
				return err
			}
			printf("database cleared\n")
			return nil
		},
	}
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, catalog, err := openCatalog(rootOpts)
			if err != nil {
				return err
			}
			defer db.Close()

			count, err := catalog.Count(context.Background())
			if err != nil {
				return err
			}
			version, err := db.SchemaVersion()
			if err != nil {
				return err
			}

			printf("products: %d\nschema version: %d\n", count, version)
			return nil
		},
	}
}
