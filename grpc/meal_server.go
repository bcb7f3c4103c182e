package grpc

import (
	"context"
	"log/slog"

	"mealmatch/errors"
	pb "mealmatch/proto/bargain"
	"mealmatch/repositories"
	"mealmatch/search"
)

const defaultSearchLimit = 20

// MealServer answers catalog queries. Full-text matching runs against
// the meal index; hits are hydrated from the repository so clients
// always see the current price, not the indexed one.
type MealServer struct {
	pb.UnimplementedMealServiceServer
	log   *slog.Logger
	meals repositories.IMealRepository
	index *search.MealIndex
}

func NewMealServer(log *slog.Logger, meals repositories.IMealRepository, index *search.MealIndex) *MealServer {
	return &MealServer{log: log, meals: meals, index: index}
}

func (s *MealServer) SearchMeals(ctx context.Context, req *pb.SearchMealsRequest) (*pb.MealList, error) {
	limit := int(req.Limit)
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if req.Query == "" {
		meals, err := s.meals.List()
		if err != nil {
			return nil, errors.MapToGRPCError(err)
		}
		if len(meals) > limit {
			meals = meals[:limit]
		}
		reply := &pb.MealList{}
		for _, meal := range meals {
			reply.Meals = append(reply.Meals, toMealView(meal))
		}
		return reply, nil
	}

	ids, err := s.index.Search(ctx, req.Query, limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	reply := &pb.MealList{}
	for _, id := range ids {
		meal, err := s.meals.Get(id)
		if err != nil {
			// Index can lag behind catalog deletions.
			s.log.Warn("Indexed meal missing from catalog", "meal_id", id)
			continue
		}
		reply.Meals = append(reply.Meals, toMealView(meal))
	}
	return reply, nil
}
