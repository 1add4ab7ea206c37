package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ascend-local-store/internal/model"
	"ascend-local-store/internal/repository"
	"ascend-local-store/internal/service"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	MappingFile string
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Bulk-import products from a CSV file",
		Long: `Import products from a CSV file into the catalog collection.

Column mappings are auto-guessed from the header row unless a YAML mapping
file is given. Each mapping entry pairs a source column with a target field
and an optional transform (none, uppercase, lowercase, trim, currency_usd,
round_number).

Example:
  etl import --db ./data/ascend.db products.csv
  etl import --db ./data/ascend.db --mapping rules.yaml products.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.MappingFile, "mapping", "", "YAML mapping file (omit to auto-guess from headers)")

	return cmd
}

func runImport(opts *ImportOptions, csvPath string) error {
	var rules []model.TransformRule
	if opts.MappingFile != "" {
		var err error
		rules, err = service.LoadRules(opts.MappingFile)
		if err != nil {
			return err
		}
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("cannot open csv: %w", err)
	}
	defer file.Close()

	db, _, err := openCatalog(opts.RootOptions)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := service.NewImporter(repository.NewSQLiteCatalogRepository(db))

	progress := func(done, total int) {
		if opts.Verbose {
			printf("\rprocessing %d/%d", done, total)
		}
	}

	report, err := importer.ImportCSV(context.Background(), file, rules, progress)
	if err != nil {
		return err
	}
	if opts.Verbose {
		printf("\n")
	}

	printf("imported %d of %d rows, catalog value %s\n",
		report.Imported, report.Rows, service.FormatUSD(report.Total))
	return nil
}
