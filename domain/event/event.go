// Package event defines the notifications fanned out to rooms after a
// successful state transition. Events are emitted post-persistence: the
// stored record is the source of truth, delivery is best effort.
package event

import "mealmatch/domain"

// DomainEvent is routed to every member of each room it names. Errors are
// never modelled as events; they go straight back to the requesting
// connection.
type DomainEvent interface {
	Rooms() []domain.RoomID
}

// BargainProposed announces a new pending offer to the restaurant and the
// admin pool. The proposer is acknowledged directly on their own
// connection, not through a room.
type BargainProposed struct {
	Bargain domain.Negotiation
}

func (e BargainProposed) Rooms() []domain.RoomID {
	return []domain.RoomID{
		domain.RestaurantRoom(e.Bargain.RestaurantID),
		domain.AdminRoom,
	}
}

// BargainResponded announces the responder's decision to the proposing
// user. Note carries the human-readable status line shown in the client.
type BargainResponded struct {
	Bargain domain.Negotiation
	Note    string
}

func (e BargainResponded) Rooms() []domain.RoomID {
	return []domain.RoomID{
		domain.UserRoom(e.Bargain.UserID),
		domain.AdminRoom,
	}
}

// CounterResolved announces the proposer's verdict on a counter offer to
// the restaurant.
type CounterResolved struct {
	Bargain domain.Negotiation
}

func (e CounterResolved) Rooms() []domain.RoomID {
	return []domain.RoomID{
		domain.RestaurantRoom(e.Bargain.RestaurantID),
		domain.AdminRoom,
	}
}
