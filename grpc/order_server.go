package grpc

import (
	"context"

	"github.com/samber/lo"

	"mealmatch/domain"
	"mealmatch/errors"
	pb "mealmatch/proto/bargain"
	"mealmatch/repositories"
)

// OrderServer exposes the orders the engine materialized from accepted
// bargains. Orders are read-only on this surface; they are only ever
// written by the materializer.
type OrderServer struct {
	pb.UnimplementedOrderServiceServer
	orders repositories.IOrderRepository
}

func NewOrderServer(orders repositories.IOrderRepository) *OrderServer {
	return &OrderServer{orders: orders}
}

func (s *OrderServer) GetUserOrders(_ context.Context, req *pb.UserOrdersRequest) (*pb.OrderList, error) {
	orders, err := s.orders.ListByUser(req.UserId)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toOrderList(orders), nil
}

func (s *OrderServer) GetAllOrders(_ context.Context, _ *pb.AllOrdersRequest) (*pb.OrderList, error) {
	orders, err := s.orders.ListAll()
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toOrderList(orders), nil
}

func toOrderList(orders []domain.Order) *pb.OrderList {
	return &pb.OrderList{
		Orders: lo.Map(orders, func(o domain.Order, _ int) *pb.OrderView {
			return toOrderView(o)
		}),
	}
}
