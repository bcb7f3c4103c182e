// Package projection builds local read models from observed events.
// Projections only consume; they never emit events or touch storage.
package projection

import (
	"context"
	"sync"

	"mealmatch/domain"
	"mealmatch/domain/event"
)

const defaultRecentLimit = 50

// Dashboard is the admin console's in-memory feed: the most recent
// negotiation activity plus per-status counters. It is registered as a
// permanent sink on the notifier, so it observes every event regardless
// of room membership. Being memory-only it restarts empty; the durable
// listing endpoints cover history.
type Dashboard struct {
	mu           sync.RWMutex
	recent       []domain.Negotiation
	statusCounts map[domain.Status]int
	recentLimit  int
}

func NewDashboard() *Dashboard {
	return &Dashboard{
		statusCounts: make(map[domain.Status]int),
		recentLimit:  defaultRecentLimit,
	}
}

func (d *Dashboard) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.BargainProposed:
		d.record(evt.Bargain)
	case event.BargainResponded:
		d.record(evt.Bargain)
	case event.CounterResolved:
		d.record(evt.Bargain)
	}
	return nil
}

func (d *Dashboard) record(n domain.Negotiation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.statusCounts[n.Status]++
	d.recent = append(d.recent, n)
	if len(d.recent) > d.recentLimit {
		d.recent = d.recent[len(d.recent)-d.recentLimit:]
	}
}

// Recent returns the latest observed negotiation snapshots, oldest first.
func (d *Dashboard) Recent() []domain.Negotiation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Negotiation, len(d.recent))
	copy(out, d.recent)
	return out
}

// StatusCounts returns how many events were observed per status.
func (d *Dashboard) StatusCounts() map[domain.Status]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[domain.Status]int, len(d.statusCounts))
	for status, count := range d.statusCounts {
		out[status] = count
	}
	return out
}
