package middleware

import (
	"context"

	"death-registry/app/models"
)

// CurrentUser returns the authenticated user, or nil outside RequireAuth.
func CurrentUser(ctx context.Context) *models.User {
	if v := ctx.Value(userKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// BearerToken returns the raw token the caller presented.
func BearerToken(ctx context.Context) string {
	if v := ctx.Value(tokenKey); v != nil {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
