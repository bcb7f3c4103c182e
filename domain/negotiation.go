// Package domain contains the core concepts of the bargaining system.
// This file defines the Negotiation entity and its transition rules.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealmatch/errors"
)

type Status string

const (
	StatusPending         Status = "pending"
	StatusAccepted        Status = "accepted"
	StatusRejected        Status = "rejected"
	StatusCountered       Status = "countered"
	StatusCounterAccepted Status = "counter_accepted"
	StatusCounterRejected Status = "counter_rejected"
)

// Terminal reports whether no further transition is defined from s.
// countered is the single non-terminal response state: it still awaits
// the proposer's decision.
func (s Status) Terminal() bool {
	switch s {
	case StatusPending, StatusCountered:
		return false
	default:
		return true
	}
}

type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionReject  Decision = "reject"
	DecisionCounter Decision = "counter"
)

// MinBargainRatio is the floor on a proposed price relative to the meal's
// price at proposal time. Offers below half the original are refused
// outright, never persisted.
const MinBargainRatio = 0.5

// Negotiation tracks one price-bargaining attempt between a user and a
// restaurant over one meal. OriginalPrice is a snapshot taken at proposal
// time and never changes, even if the meal's listed price does.
type Negotiation struct {
	ID            uuid.UUID
	UserID        string
	MealID        string
	RestaurantID  string
	OriginalPrice float64
	ProposedPrice float64
	CounterPrice  *float64
	FinalPrice    *float64
	Message       string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ExpiresAt     time.Time
}

// NewNegotiation validates the proposed price against the snapshot and
// produces a pending record. The price bounds are enforced here only;
// later transitions never re-check them.
func NewNegotiation(userID, mealID, restaurantID string,
	originalPrice, proposedPrice float64, message string,
	now time.Time, expiry time.Duration) (Negotiation, error) {
	minPrice := originalPrice * MinBargainRatio
	if proposedPrice < minPrice {
		return Negotiation{}, fmt.Errorf("%w: minimum bargain price is %.2f", errors.ErrInvalidPrice, minPrice)
	}
	if proposedPrice >= originalPrice {
		return Negotiation{}, fmt.Errorf("%w: proposed price must be below the original %.2f", errors.ErrInvalidPrice, originalPrice)
	}
	return Negotiation{
		ID:            uuid.New(),
		UserID:        userID,
		MealID:        mealID,
		RestaurantID:  restaurantID,
		OriginalPrice: originalPrice,
		ProposedPrice: proposedPrice,
		Message:       message,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(expiry),
	}, nil
}

// Expired reports whether the record has passed its absolute deadline.
// Expiry is passive: nothing is broadcast, the record just stops
// accepting transitions.
func (n Negotiation) Expired(now time.Time) bool {
	return now.After(n.ExpiresAt)
}

// Accepted reports whether the negotiation reached a terminal state that
// carries an agreed price.
func (n Negotiation) Accepted() bool {
	return n.Status == StatusAccepted || n.Status == StatusCounterAccepted
}

// Respond applies the responder's decision to a pending negotiation.
// accept fixes FinalPrice at the proposed price; counter records the
// counter price and leaves the record waiting on the proposer. A failed
// precondition leaves the receiver untouched.
func (n *Negotiation) Respond(decision Decision, counterPrice *float64, message string, now time.Time) error {
	if n.Expired(now) {
		return errors.ErrBargainExpired
	}
	if n.Status != StatusPending {
		return fmt.Errorf("%w: bargain is %s, expected %s", errors.ErrStateConflict, n.Status, StatusPending)
	}

	switch decision {
	case DecisionAccept:
		n.Status = StatusAccepted
		final := n.ProposedPrice
		n.FinalPrice = &final
	case DecisionReject:
		n.Status = StatusRejected
	case DecisionCounter:
		if counterPrice == nil || *counterPrice <= 0 {
			return fmt.Errorf("%w: counter offer requires a positive price", errors.ErrInvalidPrice)
		}
		n.Status = StatusCountered
		n.CounterPrice = counterPrice
	default:
		return fmt.Errorf("%w: unknown decision %q", errors.ErrValidation, decision)
	}

	if message != "" {
		n.Message = message
	}
	n.UpdatedAt = now
	return nil
}

// ResolveCounter applies the proposer's decision to a countered
// negotiation. accept fixes FinalPrice at the counter price.
func (n *Negotiation) ResolveCounter(decision Decision, now time.Time) error {
	if n.Expired(now) {
		return errors.ErrBargainExpired
	}
	if n.Status != StatusCountered {
		return fmt.Errorf("%w: bargain is %s, expected %s", errors.ErrStateConflict, n.Status, StatusCountered)
	}

	switch decision {
	case DecisionAccept:
		n.Status = StatusCounterAccepted
		n.FinalPrice = n.CounterPrice
	case DecisionReject:
		n.Status = StatusCounterRejected
	default:
		return fmt.Errorf("%w: unknown decision %q", errors.ErrValidation, decision)
	}

	n.UpdatedAt = now
	return nil
}
