//go:generate go run go.uber.org/mock/mockgen -source=meal.go -destination=../mocks/mock_meal_repository.go -package=mocks
package repositories

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"mealmatch/domain"
	"mealmatch/errors"
	pb "mealmatch/proto/storage"
)

// IMealRepository is the meal-lookup collaborator of the negotiation
// engine: the engine reads it exactly once per proposal to snapshot the
// original price and the owning restaurant.
type IMealRepository interface {
	Put(meal domain.Meal) error
	Get(id string) (domain.Meal, error)
	List() ([]domain.Meal, error)
}

type MealRepository struct {
	db *badger.DB
}

func NewMealRepository(db *badger.DB) MealRepository {
	return MealRepository{db: db}
}

func mealKey(id string) []byte {
	return []byte(fmt.Sprintf("meal:%s", id))
}

func (r MealRepository) Put(meal domain.Meal) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromMeal(meal)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(mealKey(meal.ID), bytes)
	})
}

func (r MealRepository) Get(id string) (domain.Meal, error) {
	var meal domain.Meal
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(mealKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: meal %s", errors.ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			var record pb.Meal
			if err := proto.Unmarshal(value, &record); err != nil {
				return err
			}
			meal = toMeal(&record)
			return nil
		})
	})
	return meal, err
}

func (r MealRepository) List() ([]domain.Meal, error) {
	var meals []domain.Meal
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("meal:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record pb.Meal
				if err := proto.Unmarshal(value, &record); err != nil {
					return err
				}
				meals = append(meals, toMeal(&record))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return meals, err
}

func fromMeal(meal domain.Meal) pb.Meal {
	return pb.Meal{
		Id:           meal.ID,
		Name:         meal.Name,
		Description:  meal.Description,
		Price:        meal.Price,
		Category:     meal.Category,
		RestaurantId: meal.RestaurantID,
		ImageUrl:     meal.ImageURL,
		IsAvailable:  meal.IsAvailable,
		Tags:         meal.Tags,
	}
}

func toMeal(record *pb.Meal) domain.Meal {
	return domain.Meal{
		ID:           record.Id,
		Name:         record.Name,
		Description:  record.Description,
		Price:        record.Price,
		Category:     record.Category,
		RestaurantID: record.RestaurantId,
		ImageURL:     record.ImageUrl,
		IsAvailable:  record.IsAvailable,
		Tags:         record.Tags,
	}
}
