package grpc

import (
	"github.com/samber/lo"

	"mealmatch/domain"
	pb "mealmatch/proto/bargain"
)

func toBargainView(n domain.Negotiation) *pb.BargainView {
	return &pb.BargainView{
		Id:            n.ID.String(),
		UserId:        n.UserID,
		MealId:        n.MealID,
		RestaurantId:  n.RestaurantID,
		OriginalPrice: n.OriginalPrice,
		ProposedPrice: n.ProposedPrice,
		CounterPrice:  n.CounterPrice,
		FinalPrice:    n.FinalPrice,
		Status:        string(n.Status),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt.UnixNano(),
		ExpiresAt:     n.ExpiresAt.UnixNano(),
	}
}

func toBargainList(negotiations []domain.Negotiation) *pb.BargainList {
	return &pb.BargainList{
		Bargains: lo.Map(negotiations, func(n domain.Negotiation, _ int) *pb.BargainView {
			return toBargainView(n)
		}),
	}
}

func toOrderView(o domain.Order) *pb.OrderView {
	return &pb.OrderView{
		Id:     o.ID.String(),
		UserId: o.UserID,
		Items: lo.Map(o.Items, func(item domain.OrderItem, _ int) *pb.OrderItemView {
			return &pb.OrderItemView{
				MealId:   item.MealID,
				Quantity: int32(item.Quantity),
				Price:    item.Price,
			}
		}),
		TotalAmount:   o.TotalAmount,
		DeliveryFee:   o.DeliveryFee,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		BargainId:     o.BargainID,
		PlacedAt:      o.PlacedAt.UnixNano(),
	}
}

func toMealView(meal domain.Meal) *pb.MealView {
	return &pb.MealView{
		Id:           meal.ID,
		Name:         meal.Name,
		Description:  meal.Description,
		Price:        meal.Price,
		Category:     meal.Category,
		RestaurantId: meal.RestaurantID,
		ImageUrl:     meal.ImageURL,
		Tags:         meal.Tags,
	}
}
