package errors

import (
	stderrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates domain sentinel errors into gRPC status codes.
// Expired bargains are reported like any other precondition failure: the
// record is simply no longer in a state that accepts the transition.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrInvalidPrice),
		stderrors.Is(err, ErrValidation),
		stderrors.Is(err, ErrMealUnavailable),
		stderrors.Is(err, ErrInvalidPassword):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrStateConflict),
		stderrors.Is(err, ErrBargainExpired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case stderrors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case stderrors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
