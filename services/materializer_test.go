package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mealmatch/domain"
	"mealmatch/repositories"
)

func acceptedNegotiation(t *testing.T) domain.Negotiation {
	t.Helper()
	n, err := domain.NewNegotiation("user-1", "meal-1", "rest-1",
		300, 200, "", time.Now().UTC(), 30*time.Minute)
	require.NoError(t, err)
	require.NoError(t, n.Respond(domain.DecisionAccept, nil, "", time.Now().UTC()))
	return n
}

func Test_Materialize_Builds_A_Confirmed_Order(t *testing.T) {
	req := require.New(t)
	orderRepository := repositories.NewOrderRepository(openTestDB(t), slog.Default())
	materializer := NewOrderMaterializer(orderRepository, domain.DefaultDeliveryFee)
	n := acceptedNegotiation(t)

	order, err := materializer.Materialize(context.Background(), n)

	req.NoError(err)
	req.Equal("user-1", order.UserID)
	req.Len(order.Items, 1)
	req.Equal(domain.OrderItem{MealID: "meal-1", Quantity: 1, Price: 200}, order.Items[0])
	req.Equal(250.0, order.TotalAmount)
	req.Equal(float64(domain.DefaultDeliveryFee), order.DeliveryFee)
	req.Equal(domain.BargainDealAddress, order.DeliveryAddress)
	req.Equal(domain.OrderConfirmed, order.Status)
	req.Equal(domain.PaymentBargainDeal, order.PaymentMethod)
	req.Equal(n.ID.String(), order.BargainID)

	// The order is durable, not just returned
	stored, err := orderRepository.Get(order.ID)
	req.NoError(err)
	req.Equal(order.ID, stored.ID)
}

func Test_Materialize_Refuses_Unsettled_Negotiations(t *testing.T) {
	req := require.New(t)
	orderRepository := repositories.NewOrderRepository(openTestDB(t), slog.Default())
	materializer := NewOrderMaterializer(orderRepository, domain.DefaultDeliveryFee)

	n, err := domain.NewNegotiation("user-1", "meal-1", "rest-1",
		300, 200, "", time.Now().UTC(), 30*time.Minute)
	req.NoError(err)

	_, err = materializer.Materialize(context.Background(), n)
	req.Error(err)

	orders, err := orderRepository.ListByUser("user-1")
	req.NoError(err)
	req.Empty(orders)
}
