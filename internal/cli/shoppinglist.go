package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umamihq/umami-backend/pkg/client"
)

func newShoppingListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"shopping-list"},
		Short:   "Manage shopping lists",
	}

	cmd.AddCommand(newListShowAllCmd())
	cmd.AddCommand(newListGetCmd())
	cmd.AddCommand(newListFromRecipeCmd())
	cmd.AddCommand(newListFromIngredientsCmd())
	cmd.AddCommand(newListToggleCmd())
	cmd.AddCommand(newListDeleteCmd())

	return cmd
}

func newListShowAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Show all shopping lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := apiClient.ShoppingLists().List(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(lists)
			}

			table := NewTable("ID", "NAME", "ITEMS", "TOTAL", "UPDATED")
			for _, l := range lists {
				table.AddRow(
					l.ID,
					truncate(l.Name, 30),
					fmt.Sprintf("%d", len(l.Items)),
					fmt.Sprintf("$%.2f", l.TotalPrice),
					l.UpdatedAt.Format("2006-01-02 15:04"),
				)
			}
			table.Render()
			return nil
		},
	}
}

func renderList(l *client.ShoppingList) {
	fmt.Printf("%s (total $%.2f)\n\n", l.Name, l.TotalPrice)

	table := NewTable("ITEM ID", "INGREDIENT", "DONE", "PRODUCT", "PRICE", "STORE")
	for _, item := range l.Items {
		done := " "
		if item.Completed {
			done = "x"
		}
		product, price, store := "(unresolved)", "-", "-"
		if item.GroceryItem != nil {
			product = truncate(item.GroceryItem.Name, 30)
			price = fmt.Sprintf("$%.2f", item.GroceryItem.Price)
			store = item.GroceryItem.Store.Name
		}
		table.AddRow(item.ID, item.Ingredient, done, product, price, store)
	}
	table.Render()
}

func newListGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.ShoppingLists().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(list)
			}
			renderList(list)
			return nil
		},
	}
}

func newListFromRecipeCmd() *cobra.Command {
	var (
		servings int
		location string
	)

	cmd := &cobra.Command{
		Use:   "from-recipe <slug>",
		Short: "Build a priced list from a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.ShoppingLists().CreateFromRecipe(context.Background(), args[0], servings, location)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(list)
			}
			fmt.Printf("Created list %s\n\n", list.ID)
			renderList(list)
			return nil
		},
	}

	cmd.Flags().IntVar(&servings, "servings", 0, "scale ingredients to this many servings")
	cmd.Flags().StringVar(&location, "location", "", "delivery location (zip code)")

	return cmd
}

func newListFromIngredientsCmd() *cobra.Command {
	var (
		name     string
		location string
	)

	cmd := &cobra.Command{
		Use:   "from-ingredients <ingredient>...",
		Short: "Build a priced list from ingredient names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ingredients := make([]client.IngredientInput, len(args))
			for i, arg := range args {
				ingredients[i] = client.IngredientInput{Name: arg}
			}

			list, err := apiClient.ShoppingLists().CreateFromIngredients(context.Background(), name, ingredients, location)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(list)
			}
			fmt.Printf("Created list %s\n\n", list.ID)
			renderList(list)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "list name")
	cmd.Flags().StringVar(&location, "location", "", "delivery location (zip code)")

	return cmd
}

func newListToggleCmd() *cobra.Command {
	var uncheck bool

	cmd := &cobra.Command{
		Use:   "check <list-id> <item-id>",
		Short: "Mark a list item completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.ShoppingLists().ToggleItem(context.Background(), args[0], args[1], !uncheck)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(list)
			}
			renderList(list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&uncheck, "undo", false, "mark the item as not completed")

	return cmd
}

func newListDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.ShoppingLists().Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
