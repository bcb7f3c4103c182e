package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// IdentityInterceptor attaches the caller's verified identity to the
// context when a valid bearer token is present, and otherwise lets the
// call through anonymously. Room joins and bargain operations stay keyed
// on client-supplied ids; handlers that need the verified identity read
// it with UserIDFromContext.
func IdentityInterceptor(ctx context.Context, req any,
	_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return handler(ctx, req)
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return handler(ctx, req)
	}

	claims, err := ValidateToken(strings.TrimPrefix(values[0], "Bearer "))
	if err != nil {
		// Invalid tokens are treated as anonymous rather than rejected.
		return handler(ctx, req)
	}

	newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
	newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)
	return handler(newCtx, req)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}
