package model

import "strings"

// Ingredient is a named quantity used by a recipe, e.g. "Flour" / "2 cups".
type Ingredient struct {
	Name     string `json:"Name"`
	Quantity string `json:"Quantity"`
}

// NewIngredient builds an ingredient, rejecting blank names or quantities.
func NewIngredient(name, quantity string) (*Ingredient, error) {
	ing := &Ingredient{Name: name, Quantity: quantity}
	if err := ing.Validate(); err != nil {
		return nil, err
	}
	return ing, nil
}

// Validate checks that both fields are non-blank.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return newValidationError("ingredient.name", "ingredient name cannot be empty")
	}
	if strings.TrimSpace(i.Quantity) == "" {
		return newValidationError("ingredient.quantity", "ingredient quantity cannot be empty")
	}
	return nil
}
