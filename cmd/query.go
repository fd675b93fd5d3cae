package cmd

import (
	"encoding/json"
	"fmt"

	"mediarental/internal/tui"

	"github.com/spf13/cobra"
)

var (
	queryJSON       bool
	rentalProductID string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products with a quantity available above zero",
	RunE:  runProducts,
}

var rentalsCmd = &cobra.Command{
	Use:   "rentals",
	Short: "List the customers renting a product",
	RunE:  runRentals,
}

func init() {
	productsCmd.Flags().BoolVar(&queryJSON, "json", false, "Print the result as JSON")
	rentalsCmd.Flags().BoolVar(&queryJSON, "json", false, "Print the result as JSON")
	rentalsCmd.Flags().StringVarP(&rentalProductID, "product", "P", "", "Product ID (required)")

	rentalsCmd.MarkFlagRequired("product")
}

func runProducts(cmd *cobra.Command, args []string) error {
	products, err := newService().ShowAvailableProducts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list available products: %w", err)
	}

	if queryJSON {
		return writeJSON(cmd, products)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderProducts(products))
	return nil
}

func runRentals(cmd *cobra.Command, args []string) error {
	renters, err := newService().ShowRentals(cmd.Context(), rentalProductID)
	if err != nil {
		return fmt.Errorf("failed to list rentals for %s: %w", rentalProductID, err)
	}

	if queryJSON {
		return writeJSON(cmd, renters)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRenters(renters))
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
