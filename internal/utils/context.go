// Package utils provides general-purpose helpers shared by the client and
// the backend: typed context keys, HMAC hashing, JSON response writing,
// the resty HTTP client wrapper, JWT handling and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/calm-companion/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user ID (int64).
	UserIDCtxKey = contextKey("userID")
	// RoleCtxKey stores the authenticated user role ([models.UserRole]).
	RoleCtxKey = contextKey("role")
)

// GetUserIDFromContext retrieves the user identifier from the context.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext retrieves the user role from the context.
func GetRoleFromContext(ctx context.Context) (models.UserRole, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.UserRole)
	return role, ok
}

// WithUser returns a copy of ctx carrying the user ID and role.
func WithUser(ctx context.Context, userID int64, role models.UserRole) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}
