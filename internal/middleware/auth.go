package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/focusflow/focusflow-go/internal/crypto"
	"github.com/focusflow/focusflow-go/internal/model"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	claimsKey   contextKey = "claims"
)

// Auth returns middleware that validates a bearer token from the
// x-auth-token header. This is a pure gate: it verifies the signature,
// decodes the claims, and attaches the caller identity to the request
// context. The identity is not re-checked against the store.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("x-auth-token")
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			ctx = context.WithValue(ctx, identityKey, model.OwnedBy(claims.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated caller identity. A
// request that never passed the auth gate yields the anonymous Owner.
func IdentityFromContext(ctx context.Context) model.Owner {
	if owner, ok := ctx.Value(identityKey).(model.Owner); ok {
		return owner
	}
	return model.Anonymous()
}

// ClaimsFromContext returns the full decoded claims, if present.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
