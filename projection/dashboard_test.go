package projection

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mealmatch/domain"
	"mealmatch/domain/event"
)

func TestDashboard_Counts_Per_Status(t *testing.T) {
	req := require.New(t)
	dashboard := NewDashboard()
	ctx := context.Background()

	// Given one full negotiation observed through its three events
	n := domain.Negotiation{ID: uuid.New(), Status: domain.StatusPending}
	req.NoError(dashboard.Consume(ctx, event.BargainProposed{Bargain: n}))

	n.Status = domain.StatusCountered
	req.NoError(dashboard.Consume(ctx, event.BargainResponded{Bargain: n}))

	n.Status = domain.StatusCounterAccepted
	req.NoError(dashboard.Consume(ctx, event.CounterResolved{Bargain: n}))

	// Then each observed status is counted once
	counts := dashboard.StatusCounts()
	req.Equal(1, counts[domain.StatusPending])
	req.Equal(1, counts[domain.StatusCountered])
	req.Equal(1, counts[domain.StatusCounterAccepted])

	recent := dashboard.Recent()
	req.Len(recent, 3)
	req.Equal(domain.StatusCounterAccepted, recent[2].Status)
}

func TestDashboard_Recent_Is_Bounded(t *testing.T) {
	req := require.New(t)
	dashboard := NewDashboard()
	ctx := context.Background()

	for i := 0; i < defaultRecentLimit+10; i++ {
		req.NoError(dashboard.Consume(ctx, event.BargainProposed{
			Bargain: domain.Negotiation{ID: uuid.New(), UserID: fmt.Sprintf("user-%d", i)},
		}))
	}

	recent := dashboard.Recent()
	req.Len(recent, defaultRecentLimit)
	// Oldest entries fell off the front
	req.Equal("user-10", recent[0].UserID)
}
