package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/service"
	"github.com/spf13/cobra"
)

const (
	menuAdd      = "1"
	menuList     = "2"
	menuFind     = "3"
	menuRemove   = "4"
	menuSaveExit = "5"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive recipe menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func menuOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("1. Add Recipe", menuAdd),
		huh.NewOption("2. List Recipes", menuList),
		huh.NewOption("3. Find Recipes by Category", menuFind),
		huh.NewOption("4. Remove Recipe", menuRemove),
		huh.NewOption("5. Save and Exit", menuSaveExit),
	}
}

func categoryOptions() []huh.Option[string] {
	categories := model.Categories()
	options := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(categoryOptionLabel(c), strconv.Itoa(int(c))))
	}
	return options
}

// runShell loops over the main menu until the user saves and exits. Leaving
// with ctrl+c ends the session without saving.
func (a *app) runShell(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, titleStyle.Render("Recipe Book"))

	for {
		choice, err := a.prompt.Choose("What would you like to do?", menuOptions())
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, warnStyle.Render("Exiting without saving."))
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case menuAdd:
			err = a.shellAdd(ctx, out)
		case menuList:
			a.shellList(ctx, out)
		case menuFind:
			err = a.shellFind(ctx, out)
		case menuRemove:
			err = a.shellRemove(ctx, out)
		case menuSaveExit:
			if err := a.save(ctx); err != nil {
				fmt.Fprintln(out, errorStyle.Render(err.Error()))
				continue
			}
			fmt.Fprintln(out, successStyle.Render("Recipes saved. Goodbye!"))
			return nil
		default:
			fmt.Fprintln(out, errorStyle.Render("Invalid option. Please try again."))
		}

		// an aborted sub-prompt returns to the menu
		if errors.Is(err, huh.ErrUserAborted) {
			continue
		}
		if err != nil {
			return err
		}
	}
}

func notBlank(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}

func (a *app) promptCategory() (model.Category, error) {
	raw, err := a.prompt.Choose("Category", categoryOptions())
	if err != nil {
		return 0, err
	}
	return model.ParseCategory(raw)
}

func (a *app) shellAdd(ctx context.Context, out io.Writer) error {
	name, err := a.prompt.Input("Recipe name", "e.g. Pancakes", notBlank("recipe name"))
	if err != nil {
		return err
	}
	category, err := a.promptCategory()
	if err != nil {
		return err
	}

	req := &service.AddRecipeRequest{Name: name, Category: &category}
	for {
		ingName, err := a.prompt.Input("Ingredient name (type 'done' to finish)", "e.g. Flour", notBlank("ingredient name"))
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(ingName), "done") {
			break
		}
		quantity, err := a.prompt.Input("Quantity of "+ingName, "e.g. 2 cups", notBlank("quantity"))
		if err != nil {
			return err
		}
		req.Ingredients = append(req.Ingredients, service.IngredientInput{Name: ingName, Quantity: quantity})
	}

	instructions, err := a.prompt.Text("Instructions")
	if err != nil {
		return err
	}
	req.Instructions = &instructions

	recipe, err := a.recipes.Add(ctx, req)
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render("Could not add recipe: "+err.Error()))
		return nil
	}
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Recipe %q added.", recipe.Name())))
	return nil
}

func (a *app) shellList(ctx context.Context, out io.Writer) {
	recipes := a.recipes.List(ctx)
	if len(recipes) == 0 {
		fmt.Fprintln(out, "No recipes found.")
		return
	}
	fmt.Fprint(out, renderRecipes(recipes))
}

func (a *app) shellFind(ctx context.Context, out io.Writer) error {
	category, err := a.promptCategory()
	if err != nil {
		return err
	}
	recipes, err := a.recipes.FindByCategory(ctx, category)
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render(err.Error()))
		return nil
	}
	if len(recipes) == 0 {
		fmt.Fprintln(out, "No recipes found in this category.")
		return nil
	}
	fmt.Fprint(out, renderRecipes(recipes))
	return nil
}

func (a *app) shellRemove(ctx context.Context, out io.Writer) error {
	name, err := a.prompt.Input("Name of the recipe to remove", "", notBlank("recipe name"))
	if err != nil {
		return err
	}
	if err := a.recipes.Remove(ctx, name); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("Recipe %q not found.", name)))
			return nil
		}
		return err
	}
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Recipe %q removed.", name)))
	return nil
}
