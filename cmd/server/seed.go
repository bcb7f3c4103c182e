package main

import (
	"log/slog"

	"mealmatch/domain"
	"mealmatch/repositories"
	"mealmatch/search"
)

// seedCatalog fills an empty meal catalog with a starter menu so a fresh
// install can negotiate immediately, then indexes the whole catalog. The
// index is rebuilt on every start because it is derived data; the Badger
// records remain the source of truth.
func seedCatalog(log *slog.Logger, meals repositories.IMealRepository, index *search.MealIndex) error {
	existing, err := meals.List()
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Empty catalog, seeding starter menu")
		for _, meal := range starterMenu {
			if err := meals.Put(meal); err != nil {
				return err
			}
		}
		existing = starterMenu
	}

	for _, meal := range existing {
		if err := index.Index(meal); err != nil {
			return err
		}
	}
	log.Info("Meal catalog ready", "meals", len(existing))
	return nil
}

var starterMenu = []domain.Meal{
	{
		ID:           "meal-margherita-pizza",
		Name:         "Margherita Pizza",
		Description:  "Classic delight with 100% real mozzarella cheese",
		Price:        299,
		Category:     "Pizza",
		RestaurantID: "rest-bella-italia",
		IsAvailable:  true,
		Tags:         []string{"italian", "vegetarian", "cheese"},
	},
	{
		ID:           "meal-chicken-biryani",
		Name:         "Chicken Biryani",
		Description:  "Aromatic basmati rice layered with spiced chicken",
		Price:        349,
		Category:     "Biryani",
		RestaurantID: "rest-spice-route",
		IsAvailable:  true,
		Tags:         []string{"indian", "rice", "spicy"},
	},
	{
		ID:           "meal-paneer-butter-masala",
		Name:         "Paneer Butter Masala",
		Description:  "Cottage cheese cubes in a rich tomato gravy",
		Price:        279,
		Category:     "Curry",
		RestaurantID: "rest-spice-route",
		IsAvailable:  true,
		Tags:         []string{"indian", "vegetarian", "curry"},
	},
	{
		ID:           "meal-veggie-burger",
		Name:         "Veggie Burger",
		Description:  "Crispy vegetable patty with lettuce and house sauce",
		Price:        199,
		Category:     "Burger",
		RestaurantID: "rest-burger-barn",
		IsAvailable:  true,
		Tags:         []string{"fast-food", "vegetarian"},
	},
	{
		ID:           "meal-sushi-platter",
		Name:         "Sushi Platter",
		Description:  "Twelve-piece assortment of nigiri and maki",
		Price:        549,
		Category:     "Japanese",
		RestaurantID: "rest-tokyo-table",
		IsAvailable:  true,
		Tags:         []string{"japanese", "seafood"},
	},
	{
		ID:           "meal-chocolate-brownie",
		Name:         "Chocolate Brownie",
		Description:  "Warm fudge brownie with a molten center",
		Price:        149,
		Category:     "Dessert",
		RestaurantID: "rest-bella-italia",
		IsAvailable:  true,
		Tags:         []string{"dessert", "chocolate"},
	},
}
