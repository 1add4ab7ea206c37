package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ascend-local-store/internal/repository"
	"ascend-local-store/internal/service"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database string
	Verbose  bool
}

// NewRootCommand creates the root command for the ETL CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "etl",
		Short: "Admin data-import tool for the Ascend local catalog store",
		Long: `Manage the embedded catalog store from the command line.

The store is the same database file the storefront reads on boot, so an
import here is visible to the app on its next hydration.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "./data/ascend.db", "path to the store database file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// openCatalog opens the store and returns the catalog pieces every
// subcommand needs. The caller must close the returned DB.
func openCatalog(opts *RootOptions) (*repository.DB, *service.CatalogService, error) {
	db, err := repository.Open(opts.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open store at %s: %w", opts.Database, err)
	}

	repo := repository.NewSQLiteCatalogRepository(db)
	catalog := service.NewCatalogService(repo, nil, 0)
	return db, catalog, nil
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}
