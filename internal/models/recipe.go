package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRecord is the persisted row for one recipe of a named book.
type RecipeRecord struct {
	ID           uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Book         string             `gorm:"size:100;not null;uniqueIndex:idx_recipe_book_name" json:"book"`
	Position     int                `gorm:"not null" json:"position"`
	Name         string             `gorm:"size:255;not null" json:"name"`
	NameKey      string             `gorm:"size:255;not null;uniqueIndex:idx_recipe_book_name" json:"-"`
	Category     int                `gorm:"not null" json:"category"`
	Instructions *string            `gorm:"type:text" json:"instructions"`
	Ingredients  []IngredientRecord `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

func (RecipeRecord) TableName() string {
	return "recipes"
}

// BeforeCreate assigns a fresh id when none was set.
func (r *RecipeRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IngredientRecord is one ingredient line of a recipe, ordered by Position.
type IngredientRecord struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	Position int       `gorm:"not null" json:"position"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Quantity string    `gorm:"size:255;not null" json:"quantity"`
}

func (IngredientRecord) TableName() string {
	return "recipe_ingredients"
}

// BeforeCreate assigns a fresh id when none was set.
func (i *IngredientRecord) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
