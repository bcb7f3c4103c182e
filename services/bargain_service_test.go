package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"mealmatch/domain"
	"mealmatch/errors"
	"mealmatch/repositories"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fixture struct {
	service *BargainService
	orders  repositories.IOrderRepository
	meals   repositories.IMealRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := openTestDB(t)
	log := slog.Default()

	orderRepository := repositories.NewOrderRepository(db, log)
	mealRepository := repositories.NewMealRepository(db)
	require.NoError(t, mealRepository.Put(domain.Meal{
		ID:           "meal-1",
		Name:         "Margherita Pizza",
		Price:        300,
		RestaurantID: "rest-1",
		IsAvailable:  true,
	}))
	require.NoError(t, mealRepository.Put(domain.Meal{
		ID:           "meal-86",
		Name:         "Sold Out Special",
		Price:        300,
		RestaurantID: "rest-1",
		IsAvailable:  false,
	}))

	materializer := NewOrderMaterializer(orderRepository, domain.DefaultDeliveryFee)
	service := NewBargainService(log,
		repositories.NewNegotiationRepository(db, log),
		mealRepository, materializer, nil, 30*time.Minute)
	return fixture{service: service, orders: orderRepository, meals: mealRepository}
}

func propose(t *testing.T, f fixture, price float64) domain.Negotiation {
	t.Helper()
	n, err := f.service.Propose(context.Background(), domain.ProposeCommand{
		UserID:        "user-1",
		MealID:        "meal-1",
		ProposedPrice: price,
		Message:       "any chance?",
	})
	require.NoError(t, err)
	return n
}

func Test_Propose_Snapshots_Catalog_Price(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	n := propose(t, f, 200)

	req.Equal(domain.StatusPending, n.Status)
	req.Equal(300.0, n.OriginalPrice)
	req.Equal("rest-1", n.RestaurantID)

	// A later catalog price change leaves the snapshot untouched
	req.NoError(f.meals.Put(domain.Meal{
		ID: "meal-1", Name: "Margherita Pizza", Price: 500,
		RestaurantID: "rest-1", IsAvailable: true,
	}))
	fetched, err := f.service.Get(context.Background(), n.ID.String())
	req.NoError(err)
	req.Equal(300.0, fetched.OriginalPrice)
}

func Test_Propose_Validation_Failure_Creates_Nothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.service.Propose(context.Background(), domain.ProposeCommand{
		UserID:        "",
		MealID:        "meal-1",
		ProposedPrice: 200,
	})
	req.ErrorIs(err, errors.ErrValidation)

	all, err := f.service.ListAll(context.Background())
	req.NoError(err)
	req.Empty(all)
}

func Test_Propose_Below_Floor_Creates_Nothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.service.Propose(context.Background(), domain.ProposeCommand{
		UserID:        "user-1",
		MealID:        "meal-1",
		ProposedPrice: 149,
	})
	req.ErrorIs(err, errors.ErrInvalidPrice)

	all, err := f.service.ListAll(context.Background())
	req.NoError(err)
	req.Empty(all)
}

func Test_Propose_Unavailable_Meal(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.service.Propose(context.Background(), domain.ProposeCommand{
		UserID:        "user-1",
		MealID:        "meal-86",
		ProposedPrice: 200,
	})
	req.ErrorIs(err, errors.ErrMealUnavailable)
}

func Test_Propose_Unknown_Meal(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.service.Propose(context.Background(), domain.ProposeCommand{
		UserID:        "user-1",
		MealID:        "meal-404",
		ProposedPrice: 200,
	})
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Respond_Accept_Materializes_An_Order(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	n := propose(t, f, 200)

	// When the restaurant accepts
	updated, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: n.ID.String(),
		Decision:  domain.DecisionAccept,
	})

	// Then the negotiation settles at the proposed price
	req.NoError(err)
	req.Equal(domain.StatusAccepted, updated.Status)
	req.Equal(200.0, *updated.FinalPrice)

	// And exactly one order exists at the agreed price plus the flat fee
	orders, err := f.orders.ListByUser("user-1")
	req.NoError(err)
	req.Len(orders, 1)
	order := orders[0]
	req.Equal(200.0+domain.DefaultDeliveryFee, order.TotalAmount)
	req.Equal(domain.OrderConfirmed, order.Status)
	req.Equal(domain.PaymentBargainDeal, order.PaymentMethod)
	req.Equal(n.ID.String(), order.BargainID)
	req.Equal(domain.BargainDealAddress, order.DeliveryAddress)
	req.Len(order.Items, 1)
	req.Equal("meal-1", order.Items[0].MealID)
	req.Equal(1, order.Items[0].Quantity)
}

func Test_Respond_Reject_Materializes_Nothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	n := propose(t, f, 200)

	updated, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: n.ID.String(),
		Decision:  domain.DecisionReject,
	})

	req.NoError(err)
	req.Equal(domain.StatusRejected, updated.Status)

	orders, err := f.orders.ListByUser("user-1")
	req.NoError(err)
	req.Empty(orders)
}

func Test_Counter_Flow_Settles_At_Counter_Price(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	n := propose(t, f, 200)
	counter := 250.0

	// When the restaurant counters
	countered, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID:    n.ID.String(),
		Decision:     domain.DecisionCounter,
		CounterPrice: &counter,
		Message:      "best I can do",
	})
	req.NoError(err)
	req.Equal(domain.StatusCountered, countered.Status)

	// No order yet: countered still awaits the proposer
	orders, err := f.orders.ListByUser("user-1")
	req.NoError(err)
	req.Empty(orders)

	// When the user takes the counter offer
	settled, err := f.service.ResolveCounter(context.Background(), domain.CounterDecisionCommand{
		BargainID: n.ID.String(),
		Decision:  domain.DecisionAccept,
	})
	req.NoError(err)
	req.Equal(domain.StatusCounterAccepted, settled.Status)
	req.Equal(250.0, *settled.FinalPrice)

	// Then the order reflects the counter price
	orders, err = f.orders.ListByUser("user-1")
	req.NoError(err)
	req.Len(orders, 1)
	req.Equal(250.0+domain.DefaultDeliveryFee, orders[0].TotalAmount)
}

func Test_Second_Response_Conflicts_And_Order_Count_Stays_One(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	n := propose(t, f, 200)

	_, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: n.ID.String(),
		Decision:  domain.DecisionAccept,
	})
	req.NoError(err)

	// When a competing accept races in after settlement
	_, err = f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: n.ID.String(),
		Decision:  domain.DecisionAccept,
	})

	req.ErrorIs(err, errors.ErrStateConflict)
	orders, err := f.orders.ListByUser("user-1")
	req.NoError(err)
	req.Len(orders, 1)
}

func Test_Respond_After_Expiry(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	n := propose(t, f, 200)

	// Given the deadline passed
	f.service.now = func() time.Time { return n.ExpiresAt.Add(time.Second) }

	_, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: n.ID.String(),
		Decision:  domain.DecisionAccept,
	})

	req.ErrorIs(err, errors.ErrBargainExpired)
	stored, err := f.service.Get(context.Background(), n.ID.String())
	req.NoError(err)
	req.Equal(domain.StatusPending, stored.Status)
}

type failingMaterializer struct{}

func (failingMaterializer) Materialize(_ context.Context, n domain.Negotiation) (domain.Order, error) {
	return domain.Order{}, fmt.Errorf("order store unavailable")
}

func Test_Materialization_Failure_Does_Not_Roll_Back(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.service.materializer = failingMaterializer{}
	n := propose(t, f, 200)

	// When acceptance succeeds but the order write fails
	updated, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: n.ID.String(),
		Decision:  domain.DecisionAccept,
	})

	// Then the negotiation still stands as accepted
	req.NoError(err)
	req.Equal(domain.StatusAccepted, updated.Status)

	stored, err := f.service.Get(context.Background(), n.ID.String())
	req.NoError(err)
	req.Equal(domain.StatusAccepted, stored.Status)
}

func Test_Respond_Unknown_And_Malformed_IDs(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: "123e4567-e89b-12d3-a456-426614174000",
		Decision:  domain.DecisionAccept,
	})
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: "not-a-uuid",
		Decision:  domain.DecisionAccept,
	})
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_ListByRestaurant_Returns_Open_Offers_Only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	open := propose(t, f, 200)
	settled := propose(t, f, 210)

	_, err := f.service.Respond(context.Background(), domain.RespondCommand{
		BargainID: settled.ID.String(),
		Decision:  domain.DecisionReject,
	})
	req.NoError(err)

	listed, err := f.service.ListByRestaurant(context.Background(), "rest-1")
	req.NoError(err)
	req.Len(listed, 1)
	req.Equal(open.ID, listed[0].ID)
}
