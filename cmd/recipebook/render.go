package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pageza/recipebook/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cardStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

func renderRecipe(r *model.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", nameStyle.Render(r.Name()), mutedStyle.Render("("+r.Category.Label()+")"))

	if len(r.Ingredients) == 0 {
		b.WriteString(mutedStyle.Render("No ingredients.") + "\n")
	} else {
		b.WriteString("Ingredients:\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "  - %s: %s\n", ing.Name, ing.Quantity)
		}
	}

	if r.Instructions != nil && *r.Instructions != "" {
		b.WriteString("Instructions:\n")
		b.WriteString(cardStyle.Render(*r.Instructions) + "\n")
	}
	return b.String()
}

func renderRecipes(recipes []*model.Recipe) string {
	blocks := make([]string, 0, len(recipes))
	for _, r := range recipes {
		blocks = append(blocks, renderRecipe(r))
	}
	return strings.Join(blocks, "\n")
}

func categoryOptionLabel(c model.Category) string {
	return fmt.Sprintf("%d. %s", int(c), c.Label())
}
