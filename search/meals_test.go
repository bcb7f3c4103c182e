package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mealmatch/domain"
)

func openTestIndex(t *testing.T) *MealIndex {
	t.Helper()
	index, err := OpenMealIndex("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	meals := []domain.Meal{
		{ID: "meal-pizza", Name: "Margherita Pizza", Description: "mozzarella and basil", Category: "Pizza", Tags: []string{"italian", "vegetarian"}},
		{ID: "meal-biryani", Name: "Chicken Biryani", Description: "spiced basmati rice", Category: "Biryani", Tags: []string{"indian", "spicy"}},
		{ID: "meal-sushi", Name: "Sushi Platter", Description: "nigiri and maki", Category: "Japanese", Tags: []string{"seafood"}},
	}
	for _, meal := range meals {
		require.NoError(t, index.Index(meal))
	}
	return index
}

func TestMealIndex_Search_By_Name(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	ids, err := index.Search(context.Background(), "pizza", 10)

	req.NoError(err)
	req.Equal([]string{"meal-pizza"}, ids)
}

func TestMealIndex_Search_By_Description(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	ids, err := index.Search(context.Background(), "basmati", 10)

	req.NoError(err)
	req.Equal([]string{"meal-biryani"}, ids)
}

func TestMealIndex_Search_By_Tag(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	ids, err := index.Search(context.Background(), "seafood", 10)

	req.NoError(err)
	req.Equal([]string{"meal-sushi"}, ids)
}

func TestMealIndex_Search_No_Match(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	ids, err := index.Search(context.Background(), "lasagna", 10)

	req.NoError(err)
	req.Empty(ids)
}

func TestMealIndex_Reindex_Overwrites(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	// When a meal is renamed and re-indexed under the same id
	req.NoError(index.Index(domain.Meal{
		ID: "meal-pizza", Name: "Quattro Formaggi", Category: "Pizza",
	}))

	ids, err := index.Search(context.Background(), "margherita", 10)
	req.NoError(err)
	req.Empty(ids)

	ids, err = index.Search(context.Background(), "formaggi", 10)
	req.NoError(err)
	req.Equal([]string{"meal-pizza"}, ids)
}
