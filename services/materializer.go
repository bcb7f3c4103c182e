//go:generate go run go.uber.org/mock/mockgen -source=materializer.go -destination=../mocks/mock_materializer.go -package=mocks
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealmatch/domain"
	"mealmatch/repositories"
)

// IMaterializer converts a negotiation that just reached an accepted
// terminal state into a confirmed order.
type IMaterializer interface {
	Materialize(ctx context.Context, n domain.Negotiation) (domain.Order, error)
}

// OrderMaterializer writes into the same store the ordinary
// order-listing feature reads from, so a bargain order shows up in order
// tracking like any checkout. It synthesizes exactly one line item at
// the agreed price, adds the flat delivery fee, and links back to the
// negotiation. The delivery address is a placeholder: this flow predates
// address collection.
type OrderMaterializer struct {
	orders      repositories.IOrderRepository
	deliveryFee float64
	now         func() time.Time
}

func NewOrderMaterializer(orders repositories.IOrderRepository, deliveryFee float64) *OrderMaterializer {
	return &OrderMaterializer{
		orders:      orders,
		deliveryFee: deliveryFee,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (m *OrderMaterializer) Materialize(_ context.Context, n domain.Negotiation) (domain.Order, error) {
	if !n.Accepted() || n.FinalPrice == nil {
		return domain.Order{}, fmt.Errorf("negotiation %s has no agreed price (status %s)", n.ID, n.Status)
	}

	order := domain.Order{
		ID:     uuid.New(),
		UserID: n.UserID,
		Items: []domain.OrderItem{{
			MealID:   n.MealID,
			Quantity: 1,
			Price:    *n.FinalPrice,
		}},
		TotalAmount:     *n.FinalPrice + m.deliveryFee,
		DeliveryFee:     m.deliveryFee,
		DeliveryAddress: domain.BargainDealAddress,
		Status:          domain.OrderConfirmed,
		PaymentMethod:   domain.PaymentBargainDeal,
		BargainID:       n.ID.String(),
		PlacedAt:        m.now(),
	}

	if err := m.orders.Create(order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
