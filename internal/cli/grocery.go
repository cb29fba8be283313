package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umamihq/umami-backend/pkg/client"
)

func newGroceryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grocery",
		Short: "Search grocery prices across retailers",
	}

	cmd.AddCommand(newGrocerySearchCmd())
	cmd.AddCommand(newGroceryCompareCmd())
	cmd.AddCommand(newGroceryStoresCmd())

	return cmd
}

func newGrocerySearchCmd() *cobra.Command {
	var (
		location string
		maxPrice float64
		sortBy   string
		store    string
		organic  bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for an ingredient across all retailers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Grocery().Search(context.Background(), args[0], &client.SearchOptions{
				Location: location,
				MaxPrice: maxPrice,
				Sort:     sortBy,
				Store:    store,
				Organic:  organic,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			table := NewTable("NAME", "BRAND", "SIZE", "PRICE", "UNIT PRICE", "STORE", "AVAILABILITY")
			for _, item := range result.Items {
				table.AddRow(
					truncate(item.Name, 40),
					item.Brand,
					item.Size,
					fmt.Sprintf("$%.2f", item.Price),
					fmt.Sprintf("$%.2f/%s", item.UnitPrice, item.Unit),
					item.Store.Name,
					item.Availability,
				)
			}
			table.Render()

			fmt.Printf("\n%d results in %.0fms\n", result.TotalResults, result.SearchTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "delivery location (zip code)")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum item price")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order: price, rating, availability")
	cmd.Flags().StringVar(&store, "store", "", "restrict to a single retailer")
	cmd.Flags().BoolVar(&organic, "organic", false, "organic items only")

	return cmd
}

func newGroceryCompareCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "compare <ingredient>",
		Short: "Compare an ingredient's price across retailers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := apiClient.Grocery().Compare(context.Background(), args[0], location)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(comparison)
			}

			fmt.Printf("Price comparison for %q\n\n", comparison.Ingredient)

			table := NewTable("NAME", "BRAND", "SIZE", "PRICE", "STORE")
			for _, item := range comparison.Items {
				table.AddRow(
					truncate(item.Name, 40),
					item.Brand,
					item.Size,
					fmt.Sprintf("$%.2f", item.Price),
					item.Store.Name,
				)
			}
			table.Render()

			fmt.Printf("\nBest price: $%.2f at %s\n", comparison.BestPrice.Price, comparison.BestPrice.Store.Name)
			fmt.Printf("Average:    $%.2f\n", comparison.AveragePrice)
			fmt.Printf("Savings:    $%.2f\n", comparison.Savings)
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "delivery location (zip code)")

	return cmd
}

func newGroceryStoresCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "stores",
		Short: "List stores serving a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := apiClient.Grocery().Stores(context.Background(), location)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(stores)
			}

			table := NewTable("ID", "NAME", "TYPE", "DELIVERY", "MIN ORDER", "FEE", "ETA")
			for _, s := range stores {
				table.AddRow(
					s.ID,
					s.Name,
					s.Type,
					strconv.FormatBool(s.DeliveryAvailable),
					fmt.Sprintf("$%.2f", s.MinimumOrder),
					fmt.Sprintf("$%.2f", s.DeliveryFee),
					s.EstimatedDeliveryTime,
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "delivery location (zip code)")

	return cmd
}
