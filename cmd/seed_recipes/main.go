package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/pageza/recipebook/config"
	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/service"
	"github.com/pageza/recipebook/internal/storage"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}

	ctx := context.Background()
	gateway, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open recipe storage", "err", err)
	}
	defer closeStore()

	recipes := service.NewRecipeService(gateway, cfg.Location())
	if _, err := recipes.Load(ctx); err != nil {
		logger.Fatal("refusing to seed over unreadable recipe data", "location", recipes.Location(), "err", err)
	}

	added, err := seed(ctx, recipes)
	if err != nil {
		logger.Fatal("failed to seed recipes", "err", err)
	}

	if _, err := recipes.Save(ctx); err != nil {
		logger.Fatal("failed to save seeded recipes", "err", err)
	}
	fmt.Printf("Seeded %d recipes into %s\n", added, recipes.Location())
}

// seed adds every sample recipe not already in the book and returns how
// many were added.
func seed(ctx context.Context, recipes service.IRecipeService) (int, error) {
	added := 0
	for _, req := range sampleRecipes() {
		if _, err := recipes.Add(ctx, req); err != nil {
			if errors.Is(err, model.ErrDuplicate) {
				logger.Debug("sample recipe already present", "name", req.Name)
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}

func sampleRecipes() []*service.AddRecipeRequest {
	category := func(c model.Category) *model.Category { return &c }
	text := func(s string) *string { return &s }

	return []*service.AddRecipeRequest{
		{
			Name:     "Bruschetta",
			Category: category(model.Appetizer),
			Ingredients: []service.IngredientInput{
				{Name: "Baguette", Quantity: "1"},
				{Name: "Tomatoes", Quantity: "4"},
				{Name: "Garlic", Quantity: "2 cloves"},
				{Name: "Basil", Quantity: "1 handful"},
				{Name: "Olive oil", Quantity: "3 tbsp"},
			},
			Instructions: text("Toast sliced bread, rub with garlic, top with diced tomatoes and basil, drizzle with oil."),
		},
		{
			Name:     "Pancakes",
			Category: category(model.MainCourse),
			Ingredients: []service.IngredientInput{
				{Name: "Flour", Quantity: "2 cups"},
				{Name: "Milk", Quantity: "1.5 cups"},
				{Name: "Eggs", Quantity: "2"},
				{Name: "Baking powder", Quantity: "2 tsp"},
			},
			Instructions: text("Whisk everything into a smooth batter, rest 10 minutes, fry in a buttered pan."),
		},
		{
			Name:     "Lentil Stew",
			Category: category(model.MainCourse),
			Ingredients: []service.IngredientInput{
				{Name: "Lentils", Quantity: "1 cup"},
				{Name: "Carrots", Quantity: "2"},
				{Name: "Onion", Quantity: "1"},
				{Name: "Stock", Quantity: "1 l"},
			},
			Instructions: text("Sweat onion and carrots, add lentils and stock, simmer 30 minutes."),
		},
		{
			Name:     "Chocolate Mousse",
			Category: category(model.Dessert),
			Ingredients: []service.IngredientInput{
				{Name: "Dark chocolate", Quantity: "200 g"},
				{Name: "Eggs", Quantity: "4"},
				{Name: "Sugar", Quantity: "2 tbsp"},
			},
			Instructions: text("Melt chocolate, fold in yolks, then whipped whites with sugar. Chill 4 hours."),
		},
		{
			Name:     "Fruit Salad",
			Category: category(model.Dessert),
			Ingredients: []service.IngredientInput{
				{Name: "Apple", Quantity: "1"},
				{Name: "Orange", Quantity: "2"},
				{Name: "Grapes", Quantity: "1 cup"},
			},
		},
	}
}
