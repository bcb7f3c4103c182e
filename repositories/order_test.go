package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mealmatch/domain"
	"mealmatch/errors"
)

func sampleOrder(userID string, placedAt time.Time) domain.Order {
	return domain.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items: []domain.OrderItem{{
			MealID:   "meal-1",
			Quantity: 1,
			Price:    200,
		}},
		TotalAmount:     250,
		DeliveryFee:     50,
		DeliveryAddress: domain.BargainDealAddress,
		Status:          domain.OrderConfirmed,
		PaymentMethod:   domain.PaymentBargainDeal,
		BargainID:       uuid.NewString(),
		PlacedAt:        placedAt,
	}
}

func Test_Order_Create_And_Get_Roundtrip(t *testing.T) {
	req := require.New(t)
	repository := NewOrderRepository(openTestDB(t), slog.Default())
	order := sampleOrder("user-1", time.Now().UTC())

	req.NoError(repository.Create(order))

	fetched, err := repository.Get(order.ID)
	req.NoError(err)
	req.Equal(order, fetched)
}

func Test_Order_Get_Unknown(t *testing.T) {
	req := require.New(t)
	repository := NewOrderRepository(openTestDB(t), slog.Default())

	_, err := repository.Get(uuid.New())
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Order_ListByUser_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewOrderRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	older := sampleOrder("user-1", at)
	newer := sampleOrder("user-1", at.Add(time.Minute))
	other := sampleOrder("user-2", at.Add(2*time.Minute))
	for _, order := range []domain.Order{older, newer, other} {
		req.NoError(repository.Create(order))
	}

	listed, err := repository.ListByUser("user-1")
	req.NoError(err)
	req.Len(listed, 2)
	req.Equal(newer.ID, listed[0].ID)
	req.Equal(older.ID, listed[1].ID)
}

func Test_Order_ListAll_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewOrderRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	first := sampleOrder("user-1", at)
	second := sampleOrder("user-2", at.Add(time.Minute))
	req.NoError(repository.Create(first))
	req.NoError(repository.Create(second))

	listed, err := repository.ListAll()
	req.NoError(err)
	req.Len(listed, 2)
	req.Equal(second.ID, listed[0].ID)
}
