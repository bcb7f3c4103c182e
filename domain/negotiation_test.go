package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mealmatch/errors"
)

const expiry = 30 * time.Minute

func pendingNegotiation(t *testing.T, original, proposed float64) Negotiation {
	t.Helper()
	n, err := NewNegotiation("user-1", "meal-1", "rest-1",
		original, proposed, "any chance?", time.Now().UTC(), expiry)
	require.NoError(t, err)
	return n
}

func TestNewNegotiation_Rejects_Offer_Below_Half_Original(t *testing.T) {
	req := require.New(t)

	// When a user proposes less than half the listed price
	_, err := NewNegotiation("user-1", "meal-1", "rest-1",
		300, 149, "", time.Now().UTC(), expiry)

	// Then the offer is refused outright
	req.ErrorIs(err, errors.ErrInvalidPrice)
}

func TestNewNegotiation_Rejects_Offer_At_Or_Above_Original(t *testing.T) {
	req := require.New(t)

	_, err := NewNegotiation("user-1", "meal-1", "rest-1",
		300, 300, "", time.Now().UTC(), expiry)
	req.ErrorIs(err, errors.ErrInvalidPrice)

	_, err = NewNegotiation("user-1", "meal-1", "rest-1",
		300, 350, "", time.Now().UTC(), expiry)
	req.ErrorIs(err, errors.ErrInvalidPrice)
}

func TestNewNegotiation_Accepts_Offer_At_Exact_Floor(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	n, err := NewNegotiation("user-1", "meal-1", "rest-1",
		300, 150, "deal?", now, expiry)

	req.NoError(err)
	req.Equal(StatusPending, n.Status)
	req.Equal(300.0, n.OriginalPrice)
	req.Equal(150.0, n.ProposedPrice)
	req.Nil(n.CounterPrice)
	req.Nil(n.FinalPrice)
	req.Equal(now.Add(expiry), n.ExpiresAt)
}

func TestRespond_Accept_Fixes_Final_At_Proposed_Price(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)

	// When the restaurant accepts
	err := n.Respond(DecisionAccept, nil, "", time.Now().UTC())

	// Then the agreed price is the proposal
	req.NoError(err)
	req.Equal(StatusAccepted, n.Status)
	req.NotNil(n.FinalPrice)
	req.Equal(200.0, *n.FinalPrice)
	req.True(n.Accepted())
	req.True(n.Status.Terminal())
}

func TestRespond_Reject_Is_Terminal_Without_Final_Price(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)

	err := n.Respond(DecisionReject, nil, "", time.Now().UTC())

	req.NoError(err)
	req.Equal(StatusRejected, n.Status)
	req.Nil(n.FinalPrice)
	req.False(n.Accepted())
	req.True(n.Status.Terminal())
}

func TestRespond_Counter_Waits_On_Proposer(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)
	counter := 250.0

	err := n.Respond(DecisionCounter, &counter, "best I can do", time.Now().UTC())

	req.NoError(err)
	req.Equal(StatusCountered, n.Status)
	req.NotNil(n.CounterPrice)
	req.Equal(250.0, *n.CounterPrice)
	req.Nil(n.FinalPrice)
	req.False(n.Status.Terminal())
}

func TestRespond_Counter_Requires_A_Price(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)

	err := n.Respond(DecisionCounter, nil, "", time.Now().UTC())

	req.ErrorIs(err, errors.ErrInvalidPrice)
	// Failed precondition leaves the record untouched
	req.Equal(StatusPending, n.Status)
}

func TestRespond_On_Settled_Bargain_Conflicts(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)
	req.NoError(n.Respond(DecisionAccept, nil, "", time.Now().UTC()))

	// When a second response races in
	err := n.Respond(DecisionReject, nil, "", time.Now().UTC())

	// Then the first outcome stands
	req.ErrorIs(err, errors.ErrStateConflict)
	req.Equal(StatusAccepted, n.Status)
	req.Equal(200.0, *n.FinalPrice)
}

func TestRespond_After_Deadline_Expires(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)

	err := n.Respond(DecisionAccept, nil, "", n.ExpiresAt.Add(time.Second))

	req.ErrorIs(err, errors.ErrBargainExpired)
	req.Equal(StatusPending, n.Status)
	req.Nil(n.FinalPrice)
}

func TestResolveCounter_Accept_Fixes_Final_At_Counter_Price(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)
	counter := 250.0
	req.NoError(n.Respond(DecisionCounter, &counter, "", time.Now().UTC()))

	// When the user takes the counter offer
	err := n.ResolveCounter(DecisionAccept, time.Now().UTC())

	req.NoError(err)
	req.Equal(StatusCounterAccepted, n.Status)
	req.Equal(250.0, *n.FinalPrice)
	req.True(n.Accepted())
}

func TestResolveCounter_Reject_Ends_The_Negotiation(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)
	counter := 250.0
	req.NoError(n.Respond(DecisionCounter, &counter, "", time.Now().UTC()))

	err := n.ResolveCounter(DecisionReject, time.Now().UTC())

	req.NoError(err)
	req.Equal(StatusCounterRejected, n.Status)
	req.Nil(n.FinalPrice)
	req.True(n.Status.Terminal())
}

func TestResolveCounter_On_Pending_Bargain_Conflicts(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)

	// When the user tries to accept a counter that was never made
	err := n.ResolveCounter(DecisionAccept, time.Now().UTC())

	req.ErrorIs(err, errors.ErrStateConflict)
	req.Equal(StatusPending, n.Status)
}

func TestResolveCounter_After_Deadline_Expires(t *testing.T) {
	req := require.New(t)
	n := pendingNegotiation(t, 300, 200)
	counter := 250.0
	req.NoError(n.Respond(DecisionCounter, &counter, "", time.Now().UTC()))

	err := n.ResolveCounter(DecisionAccept, n.ExpiresAt.Add(time.Second))

	req.ErrorIs(err, errors.ErrBargainExpired)
	req.Equal(StatusCountered, n.Status)
}
