package storage

import (
	"context"

	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/models"
	"gorm.io/gorm"
)

// SQLStore keeps books as rows, one book per location. A save replaces the
// whole book inside a transaction.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore creates a gateway over db. The tables must already exist, see
// database.RunMigrations.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Save replaces the rows for location with the named recipes of book.
func (s *SQLStore) Save(ctx context.Context, location string, book *model.RecipeBook) (*SaveReport, error) {
	var records []models.RecipeRecord
	var skipped []SkippedEntry

	for i, r := range book.List() {
		if !r.HasValidName() {
			skipped = append(skipped, SkippedEntry{Index: i, Reason: "recipe name is empty"})
			continue
		}
		record := models.RecipeRecord{
			Book:         location,
			Position:     len(records),
			Name:         r.Name(),
			NameKey:      model.NormalizeName(r.Name()),
			Category:     int(r.Category),
			Instructions: r.Instructions,
			Ingredients:  make([]models.IngredientRecord, 0, len(r.Ingredients)),
		}
		for j, ing := range r.Ingredients {
			record.Ingredients = append(record.Ingredients, models.IngredientRecord{
				Position: j,
				Name:     ing.Name,
				Quantity: ing.Quantity,
			})
		}
		records = append(records, record)
	}
	logSkipped("recipe was invalid and will not be saved", skipped)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&models.RecipeRecord{}).Select("id").Where("book = ?", location)
		if err := tx.Where("recipe_id IN (?)", stale).Delete(&models.IngredientRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book = ?", location).Delete(&models.RecipeRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		storageLog().Error("error saving recipe data", "book", location, "err", err)
		return nil, ioError("write", location, err)
	}

	storageLog().Info("recipe data saved", "book", location, "recipes", len(records))
	return &SaveReport{Location: location, Saved: len(records), Skipped: skipped}, nil
}

// Load reads the rows for location in saved order. An unknown book is empty.
func (s *SQLStore) Load(ctx context.Context, location string) *LoadResult {
	var records []models.RecipeRecord
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("book = ?", location).
		Order("position ASC").
		Find(&records).Error
	if err != nil {
		storageLog().Error("error loading recipe data", "book", location, "err", err)
		return &LoadResult{Book: model.NewRecipeBook(), Err: ioError("read", location, err)}
	}

	entries := make([]RecipeEntry, 0, len(records))
	for _, record := range records {
		entry := RecipeEntry{
			RecipeName:   record.Name,
			Category:     CategoryOrdinal(record.Category),
			Ingredients:  make([]model.Ingredient, 0, len(record.Ingredients)),
			Instructions: record.Instructions,
		}
		for _, ing := range record.Ingredients {
			entry.Ingredients = append(entry.Ingredients, model.Ingredient{Name: ing.Name, Quantity: ing.Quantity})
		}
		entries = append(entries, entry)
	}

	book, skipped := BuildBook(entries)
	logSkipped("recipe was skipped while loading", skipped)
	return &LoadResult{Book: book, Skipped: skipped}
}
