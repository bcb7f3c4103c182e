package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"mealmatch/errors"
)

var validate = validator.New()

// ProposeCommand opens a negotiation. OriginalPrice is deliberately
// absent: the engine snapshots it from the meal catalog, never from the
// client.
type ProposeCommand struct {
	UserID        string  `validate:"required"`
	MealID        string  `validate:"required"`
	ProposedPrice float64 `validate:"required,gt=0"`
	Message       string  `validate:"max=500"`
}

// RespondCommand carries the responder's decision on a pending bargain.
type RespondCommand struct {
	BargainID    string   `validate:"required"`
	Decision     Decision `validate:"required,oneof=accept reject counter"`
	CounterPrice *float64 `validate:"omitempty,gt=0"`
	Message      string   `validate:"max=500"`
}

// CounterDecisionCommand carries the proposer's decision on a counter.
type CounterDecisionCommand struct {
	BargainID string   `validate:"required"`
	Decision  Decision `validate:"required,oneof=accept reject"`
}

func (c ProposeCommand) Validate() error {
	return wrapValidation(validate.Struct(c))
}

func (c RespondCommand) Validate() error {
	return wrapValidation(validate.Struct(c))
}

func (c CounterDecisionCommand) Validate() error {
	return wrapValidation(validate.Struct(c))
}

func wrapValidation(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}
