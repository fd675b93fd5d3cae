package cmd

import (
	"fmt"

	"mediarental/internal/logging"
	"mediarental/internal/media"

	"github.com/spf13/cobra"
)

var (
	importDir       string
	productFile     string
	customerFile    string
	rentalsFileName string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import product, customer and rental CSV files",
	Long: `Import three CSV files from one directory into the product, customer and
rentals collections. A missing file is reported as an error for that source
and the other files are still imported. Collections are not cleared first,
so importing the same files twice stores every row twice.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importDir, "dir", "D", ".", "Directory containing the CSV files")
	importCmd.Flags().StringVar(&productFile, "products", "products.csv", "Product CSV file name")
	importCmd.Flags().StringVar(&customerFile, "customers", "customers.csv", "Customer CSV file name")
	importCmd.Flags().StringVar(&rentalsFileName, "rentals", "rentals.csv", "Rental CSV file name")
}

func newService() *media.Service {
	return media.NewService(media.MongoConnector{Config: cfg.Mongo}, logging.NewSlogSink(logger))
}

func runImport(cmd *cobra.Command, args []string) error {
	logger.Info("starting import", "dir", importDir, "database", cfg.Mongo.Database)

	result, err := newService().ImportData(cmd.Context(), importDir, productFile, customerFile, rentalsFileName)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %6s %6s\n", "source", "added", "errors")
	fmt.Fprintf(out, "%-10s %6d %6d\n", "products", result.Added.Products, result.Errors.Products)
	fmt.Fprintf(out, "%-10s %6d %6d\n", "customers", result.Added.Customers, result.Errors.Customers)
	fmt.Fprintf(out, "%-10s %6d %6d\n", "rentals", result.Added.Rentals, result.Errors.Rentals)

	if result.Errors != (media.Counts{}) {
		logger.Warn("some CSV files were not found", "dir", importDir,
			"products", result.Errors.Products, "customers", result.Errors.Customers, "rentals", result.Errors.Rentals)
	}
	return nil
}
