package auth

import (
	"context"
	"net/http"

	"moviefinder/models"
)

// ContextKey is the type used for context keys
type ContextKey string

// ContextKeyUser holds the authenticated models.User.
const ContextKeyUser ContextKey = "user"

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, user)
}

// UserFromRequest retrieves the authenticated user from the request context.
func UserFromRequest(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(ContextKeyUser).(models.User)
	return user, ok
}
