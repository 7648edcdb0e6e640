package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"death-registry/app/dto"
	"death-registry/app/services"
)

type ctxKey int

const (
	userKey ctxKey = iota + 1
	tokenKey
)

type Auth struct{ Tokens *services.TokenService }

// RequireAuth resolves the bearer token to a user and stores both in the
// request context. Missing, malformed and revoked tokens all answer 401
// without saying which.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			unauthenticated(w)
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		u, err := a.Tokens.Authenticate(r.Context(), token)
		if err != nil {
			unauthenticated(w)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(dto.Response{OK: false, Message: "Unauthenticated."})
}
