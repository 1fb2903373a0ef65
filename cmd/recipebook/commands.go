package main

import (
	"fmt"
	"strings"

	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/service"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		name         string
		categoryArg  string
		ingredients  []string
		instructions string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe and save the book",
		Long: `Add a recipe and save the book.

Without --name the recipe is entered through interactive prompts.

Examples:
  recipebook add --name Pancakes --category "main course" \
    --ingredient "Flour=2 cups" --ingredient "Milk=1 cup" \
    --instructions "Mix and fry."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if name == "" {
				if err := a.shellAdd(ctx, out); err != nil {
					return err
				}
				return a.save(ctx)
			}

			category, err := model.ParseCategory(categoryArg)
			if err != nil {
				return err
			}
			req := &service.AddRecipeRequest{Name: name, Category: &category}
			for _, raw := range ingredients {
				input, err := parseIngredientFlag(raw)
				if err != nil {
					return err
				}
				req.Ingredients = append(req.Ingredients, input)
			}
			if cmd.Flags().Changed("instructions") {
				req.Instructions = &instructions
			}

			recipe, err := a.recipes.Add(ctx, req)
			if err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Recipe %q added.", recipe.Name())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "recipe name")
	cmd.Flags().StringVarP(&categoryArg, "category", "c", "appetizer", "category: appetizer, main course, dessert or 0-2")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, `ingredient as "Name=Quantity", repeatable`)
	cmd.Flags().StringVar(&instructions, "instructions", "", "preparation instructions")
	return cmd
}

// parseIngredientFlag splits "Name=Quantity" on the first '='.
func parseIngredientFlag(raw string) (service.IngredientInput, error) {
	name, quantity, ok := strings.Cut(raw, "=")
	if !ok {
		return service.IngredientInput{}, fmt.Errorf("invalid ingredient %q, expected Name=Quantity", raw)
	}
	return service.IngredientInput{
		Name:     strings.TrimSpace(name),
		Quantity: strings.TrimSpace(quantity),
	}, nil
}

func newListCmd(a *app) *cobra.Command {
	var categoryArg string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if categoryArg == "" {
				a.shellList(ctx, out)
				return nil
			}

			category, err := model.ParseCategory(categoryArg)
			if err != nil {
				return err
			}
			recipes, err := a.recipes.FindByCategory(ctx, category)
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				fmt.Fprintln(out, "No recipes found in this category.")
				return nil
			}
			fmt.Fprint(out, renderRecipes(recipes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryArg, "category", "c", "", "only list recipes in this category")
	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Show one recipe by name (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := a.recipes.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRecipe(recipe))
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a recipe by name and save the book",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.recipes.Remove(ctx, args[0]); err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Recipe %q removed.", args[0])))
			return nil
		},
	}
}
