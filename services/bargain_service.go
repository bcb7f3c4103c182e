//go:generate go run go.uber.org/mock/mockgen -source=bargain_service.go -destination=../mocks/mock_bargain_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mealmatch/domain"
	"mealmatch/errors"
	"mealmatch/moderation"
	"mealmatch/repositories"
)

// IBargainService is the negotiation engine shared by the stream gateway
// and the polling endpoints. Both call the same methods; only the caller
// decides whether to publish the result to rooms afterwards.
type IBargainService interface {
	Propose(ctx context.Context, cmd domain.ProposeCommand) (domain.Negotiation, error)
	Respond(ctx context.Context, cmd domain.RespondCommand) (domain.Negotiation, error)
	ResolveCounter(ctx context.Context, cmd domain.CounterDecisionCommand) (domain.Negotiation, error)
	Get(ctx context.Context, bargainID string) (domain.Negotiation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Negotiation, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Negotiation, error)
	ListAll(ctx context.Context) ([]domain.Negotiation, error)
}

type BargainService struct {
	log          *slog.Logger
	negotiations repositories.INegotiationRepository
	meals        repositories.IMealRepository
	materializer IMaterializer
	moderator    *moderation.Moderator
	expiry       time.Duration
	now          func() time.Time
}

func NewBargainService(log *slog.Logger,
	negotiations repositories.INegotiationRepository,
	meals repositories.IMealRepository,
	materializer IMaterializer,
	moderator *moderation.Moderator,
	expiry time.Duration) *BargainService {
	return &BargainService{
		log:          log,
		negotiations: negotiations,
		meals:        meals,
		materializer: materializer,
		moderator:    moderator,
		expiry:       expiry,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Propose opens a negotiation: it snapshots the meal's current price as
// the immutable original, enforces the price floor and persists a
// pending record. A validation failure creates nothing.
func (s *BargainService) Propose(_ context.Context, cmd domain.ProposeCommand) (domain.Negotiation, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Negotiation{}, err
	}

	meal, err := s.meals.Get(cmd.MealID)
	if err != nil {
		return domain.Negotiation{}, err
	}
	if !meal.IsAvailable {
		return domain.Negotiation{}, fmt.Errorf("%w: %s", errors.ErrMealUnavailable, meal.Name)
	}

	negotiation, err := domain.NewNegotiation(
		cmd.UserID, meal.ID, meal.RestaurantID,
		meal.Price, cmd.ProposedPrice, s.censor(cmd.Message),
		s.now(), s.expiry,
	)
	if err != nil {
		return domain.Negotiation{}, err
	}

	if err := s.negotiations.Create(negotiation); err != nil {
		return domain.Negotiation{}, err
	}
	s.log.Info("Bargain proposed",
		"bargain_id", negotiation.ID,
		"meal_id", meal.ID,
		"original_price", meal.Price,
		"proposed_price", cmd.ProposedPrice)
	return negotiation, nil
}

// Respond applies the responder's decision. The current status is
// re-read inside the store transaction immediately before the write, so
// of two racing responders exactly one wins and the other gets a state
// conflict. Acceptance triggers order materialization as a best-effort
// secondary effect: a failure there is logged and the negotiation stands
// as accepted.
func (s *BargainService) Respond(ctx context.Context, cmd domain.RespondCommand) (domain.Negotiation, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Negotiation{}, err
	}
	id, err := parseBargainID(cmd.BargainID)
	if err != nil {
		return domain.Negotiation{}, err
	}

	message := s.censor(cmd.Message)
	now := s.now()
	updated, err := s.negotiations.Transition(id, func(n *domain.Negotiation) error {
		return n.Respond(cmd.Decision, cmd.CounterPrice, message, now)
	})
	if err != nil {
		return domain.Negotiation{}, err
	}

	s.log.Info("Bargain responded",
		"bargain_id", updated.ID,
		"decision", cmd.Decision,
		"status", updated.Status)
	s.materializeIfAccepted(ctx, updated)
	return updated, nil
}

// ResolveCounter applies the proposer's verdict on a counter offer, with
// the same transactional precondition check and the same best-effort
// materialization on acceptance.
func (s *BargainService) ResolveCounter(ctx context.Context, cmd domain.CounterDecisionCommand) (domain.Negotiation, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Negotiation{}, err
	}
	id, err := parseBargainID(cmd.BargainID)
	if err != nil {
		return domain.Negotiation{}, err
	}

	now := s.now()
	updated, err := s.negotiations.Transition(id, func(n *domain.Negotiation) error {
		return n.ResolveCounter(cmd.Decision, now)
	})
	if err != nil {
		return domain.Negotiation{}, err
	}

	s.log.Info("Counter resolved",
		"bargain_id", updated.ID,
		"decision", cmd.Decision,
		"status", updated.Status)
	s.materializeIfAccepted(ctx, updated)
	return updated, nil
}

func (s *BargainService) Get(_ context.Context, bargainID string) (domain.Negotiation, error) {
	id, err := parseBargainID(bargainID)
	if err != nil {
		return domain.Negotiation{}, err
	}
	return s.negotiations.Get(id)
}

func (s *BargainService) ListByUser(_ context.Context, userID string) ([]domain.Negotiation, error) {
	return s.negotiations.ListByUser(userID)
}

// ListByRestaurant returns pending offers only: that is what the
// restaurant console acts on.
func (s *BargainService) ListByRestaurant(_ context.Context, restaurantID string) ([]domain.Negotiation, error) {
	return s.negotiations.ListByRestaurant(restaurantID, true)
}

func (s *BargainService) ListAll(_ context.Context) ([]domain.Negotiation, error) {
	return s.negotiations.ListAll()
}

// materializeIfAccepted runs the order side effect after a transition
// into an accepted terminal state. The status transition already
// happened and is the authoritative outcome; materialization failure is
// logged, never propagated, never rolled back. At-most-once holds
// because a second identical transition attempt fails its precondition
// before ever reaching this point.
func (s *BargainService) materializeIfAccepted(ctx context.Context, n domain.Negotiation) {
	if !n.Accepted() {
		return
	}
	order, err := s.materializer.Materialize(ctx, n)
	if err != nil {
		s.log.Error("Order materialization failed, negotiation stands",
			"bargain_id", n.ID,
			"status", n.Status,
			"error", err)
		return
	}
	s.log.Info("Order materialized",
		"bargain_id", n.ID,
		"order_id", order.ID,
		"final_price", *n.FinalPrice)
}

func (s *BargainService) censor(message string) string {
	if message == "" || s.moderator == nil {
		return message
	}
	censored := s.moderator.Censor(message)
	if censored != message {
		s.log.Debug("Bargain message censored",
			"language", moderation.DetectLanguage(message))
	}
	return censored
}

func parseBargainID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: bargain %q", errors.ErrNotFound, raw)
	}
	return id, nil
}
