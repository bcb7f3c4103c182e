package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mealmatch/domain"
	"mealmatch/errors"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newNegotiation(t *testing.T, userID, restaurantID string, createdAt time.Time) domain.Negotiation {
	t.Helper()
	n, err := domain.NewNegotiation(userID, "meal-1", restaurantID,
		300, 200, "any chance?", createdAt, 30*time.Minute)
	require.NoError(t, err)
	return n
}

func Test_Create_And_Get_Roundtrip(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())
	n := newNegotiation(t, "user-1", "rest-1", time.Now().UTC())

	req.NoError(repository.Create(n))

	fetched, err := repository.Get(n.ID)
	req.NoError(err)
	req.Equal(n, fetched)
}

func Test_Get_Unknown_Bargain(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())

	_, err := repository.Get(uuid.New())
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Transition_Applies_And_Persists(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())
	n := newNegotiation(t, "user-1", "rest-1", time.Now().UTC())
	req.NoError(repository.Create(n))

	// When the restaurant accepts
	updated, err := repository.Transition(n.ID, func(record *domain.Negotiation) error {
		return record.Respond(domain.DecisionAccept, nil, "", time.Now().UTC())
	})

	// Then the returned and stored records both carry the outcome
	req.NoError(err)
	req.Equal(domain.StatusAccepted, updated.Status)
	req.Equal(200.0, *updated.FinalPrice)

	stored, err := repository.Get(n.ID)
	req.NoError(err)
	req.Equal(domain.StatusAccepted, stored.Status)
}

func Test_Transition_Second_Response_Conflicts(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())
	n := newNegotiation(t, "user-1", "rest-1", time.Now().UTC())
	req.NoError(repository.Create(n))

	// Given a first response already landed
	_, err := repository.Transition(n.ID, func(record *domain.Negotiation) error {
		return record.Respond(domain.DecisionAccept, nil, "", time.Now().UTC())
	})
	req.NoError(err)

	// When a competing response arrives
	_, err = repository.Transition(n.ID, func(record *domain.Negotiation) error {
		return record.Respond(domain.DecisionReject, nil, "", time.Now().UTC())
	})

	// Then it conflicts and the stored record is untouched
	req.ErrorIs(err, errors.ErrStateConflict)
	stored, err := repository.Get(n.ID)
	req.NoError(err)
	req.Equal(domain.StatusAccepted, stored.Status)
	req.Equal(200.0, *stored.FinalPrice)
}

func Test_Transition_Failed_Apply_Writes_Nothing(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())
	n := newNegotiation(t, "user-1", "rest-1", time.Now().UTC())
	req.NoError(repository.Create(n))

	// When apply fails (counter without a price)
	_, err := repository.Transition(n.ID, func(record *domain.Negotiation) error {
		return record.Respond(domain.DecisionCounter, nil, "", time.Now().UTC())
	})

	req.ErrorIs(err, errors.ErrInvalidPrice)
	stored, err := repository.Get(n.ID)
	req.NoError(err)
	req.Equal(domain.StatusPending, stored.Status)
}

func Test_Transition_Unknown_Bargain(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())

	_, err := repository.Transition(uuid.New(), func(record *domain.Negotiation) error {
		return nil
	})
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_ListByUser_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	oldest := newNegotiation(t, "user-1", "rest-1", at)
	middle := newNegotiation(t, "user-1", "rest-2", at.Add(1*time.Minute))
	newest := newNegotiation(t, "user-1", "rest-1", at.Add(2*time.Minute))
	other := newNegotiation(t, "user-2", "rest-1", at.Add(3*time.Minute))
	for _, n := range []domain.Negotiation{oldest, middle, newest, other} {
		req.NoError(repository.Create(n))
	}

	listed, err := repository.ListByUser("user-1")
	req.NoError(err)
	req.Len(listed, 3)
	req.Equal(newest.ID, listed[0].ID)
	req.Equal(middle.ID, listed[1].ID)
	req.Equal(oldest.ID, listed[2].ID)
}

func Test_ListByRestaurant_Only_Pending(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	pending := newNegotiation(t, "user-1", "rest-1", at)
	settled := newNegotiation(t, "user-2", "rest-1", at.Add(1*time.Minute))
	req.NoError(repository.Create(pending))
	req.NoError(repository.Create(settled))

	_, err := repository.Transition(settled.ID, func(record *domain.Negotiation) error {
		return record.Respond(domain.DecisionReject, nil, "", time.Now().UTC())
	})
	req.NoError(err)

	// When the restaurant console polls for open offers
	listed, err := repository.ListByRestaurant("rest-1", true)
	req.NoError(err)
	req.Len(listed, 1)
	req.Equal(pending.ID, listed[0].ID)

	// And the unfiltered listing still shows both
	all, err := repository.ListByRestaurant("rest-1", false)
	req.NoError(err)
	req.Len(all, 2)
}

func Test_ListAll_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewNegotiationRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	first := newNegotiation(t, "user-1", "rest-1", at)
	second := newNegotiation(t, "user-2", "rest-2", at.Add(1*time.Minute))
	req.NoError(repository.Create(first))
	req.NoError(repository.Create(second))

	listed, err := repository.ListAll()
	req.NoError(err)
	req.Len(listed, 2)
	req.Equal(second.ID, listed[0].ID)
	req.Equal(first.ID, listed[1].ID)
}
