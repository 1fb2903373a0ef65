package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Category is the kind of dish a recipe produces.
type Category int

const (
	Appetizer Category = iota
	MainCourse
	Dessert
)

var categoryNames = [...]string{"Appetizer", "MainCourse", "Dessert"}

var categoryLabels = [...]string{"Appetizer", "Main Course", "Dessert"}

// Categories returns every defined category in ordinal order.
func Categories() []Category {
	return []Category{Appetizer, MainCourse, Dessert}
}

// IsValid reports whether c is one of the defined categories.
func (c Category) IsValid() bool {
	return c >= Appetizer && c <= Dessert
}

func (c Category) String() string {
	if !c.IsValid() {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Label is the human readable name, e.g. "Main Course".
func (c Category) Label() string {
	if !c.IsValid() {
		return c.String()
	}
	return categoryLabels[c]
}

// ParseCategory accepts a category name in any case, with or without
// separators ("main course", "Main_Course"), or its ordinal as text.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.Atoi(trimmed); err == nil {
		c := Category(n)
		if !c.IsValid() {
			return 0, newValidationError("category", fmt.Sprintf("unknown category %d", n))
		}
		return c, nil
	}

	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(trimmed))
	for _, c := range Categories() {
		if strings.ToLower(categoryNames[c]) == key {
			return c, nil
		}
	}
	return 0, newValidationError("category", fmt.Sprintf("unknown category %q", s))
}

// MarshalJSON encodes the category as its ordinal.
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return nil, newValidationError("category", fmt.Sprintf("unknown category %d", int(c)))
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalJSON accepts either the ordinal or the name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var parsed Category
	var err error
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return newValidationError("category", fmt.Sprintf("unknown category %v", v))
		}
		parsed, err = ParseCategory(strconv.Itoa(int(v)))
	case string:
		parsed, err = ParseCategory(v)
	default:
		return newValidationError("category", fmt.Sprintf("unsupported category value %s", string(data)))
	}
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
