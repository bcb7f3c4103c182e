package errors

import "fmt"

var (
	// Negotiation lifecycle.
	ErrNotFound        = fmt.Errorf("not found")
	ErrStateConflict   = fmt.Errorf("state conflict")
	ErrBargainExpired  = fmt.Errorf("bargain expired")
	ErrInvalidPrice    = fmt.Errorf("invalid price")
	ErrValidation      = fmt.Errorf("validation failed")
	ErrMealUnavailable = fmt.Errorf("meal is not available")

	// Accounts.
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")

	// Supervision.
	ErrWorkerPanic = fmt.Errorf("worker panic")
)
