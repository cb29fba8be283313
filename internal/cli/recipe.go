package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umamihq/umami-backend/pkg/client"
)

func newRecipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Browse the recipe catalog",
	}

	cmd.AddCommand(newRecipeListCmd())
	cmd.AddCommand(newRecipeGetCmd())
	cmd.AddCommand(newRecipeTrendingCmd())
	cmd.AddCommand(newRecipeRecommendCmd())

	return cmd
}

func recipeTable(recipes []client.Recipe) {
	table := NewTable("SLUG", "TITLE", "CUISINE", "DIFFICULTY", "TIME", "RATING")
	for _, r := range recipes {
		table.AddRow(
			r.Slug,
			truncate(r.Title, 40),
			r.Cuisine,
			r.Difficulty,
			fmt.Sprintf("%dm", r.PrepTime+r.CookTime),
			fmt.Sprintf("%.1f (%d)", r.Rating, r.ReviewCount),
		)
	}
	table.Render()
}

func newRecipeListCmd() *cobra.Command {
	var (
		query      string
		cuisine    string
		dietary    []string
		difficulty string
		maxTime    int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := apiClient.Recipes().List(context.Background(), &client.RecipeFilter{
				Query:      query,
				Cuisine:    cuisine,
				Dietary:    dietary,
				Difficulty: difficulty,
				MaxTime:    maxTime,
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(recipes)
			}
			recipeTable(recipes)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "title search")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "filter by cuisine")
	cmd.Flags().StringSliceVar(&dietary, "dietary", nil, "filter by dietary tags")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty")
	cmd.Flags().IntVar(&maxTime, "max-time", 0, "maximum total minutes")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results")

	return cmd
}

func newRecipeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := apiClient.Recipes().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(recipe)
			}

			fmt.Println(recipe.Title)
			fmt.Println(strings.Repeat("=", len(recipe.Title)))
			if recipe.Description != "" {
				fmt.Println(recipe.Description)
			}
			fmt.Printf("\nCuisine: %s  Difficulty: %s  Serves: %d  Time: %dm\n\n",
				recipe.Cuisine, recipe.Difficulty, recipe.Servings, recipe.PrepTime+recipe.CookTime)

			fmt.Println("Ingredients:")
			for _, ing := range recipe.Ingredients {
				line := fmt.Sprintf("  - %g %s %s", ing.Amount, ing.Unit, ing.Name)
				if ing.Optional {
					line += " (optional)"
				}
				fmt.Println(line)
			}

			fmt.Println("\nInstructions:")
			for _, ins := range recipe.Instructions {
				fmt.Printf("  %d. %s\n", ins.Step, ins.Description)
			}
			return nil
		},
	}
}

func newRecipeTrendingCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := apiClient.Recipes().Trending(context.Background(), limit)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(recipes)
			}
			recipeTable(recipes)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results")

	return cmd
}

func newRecipeRecommendCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show recommended recipes (personalized when logged in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := apiClient.Recipes().Recommendations(context.Background(), limit)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(recipes)
			}
			recipeTable(recipes)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results")

	return cmd
}
