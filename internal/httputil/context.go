package httputil

import (
	"context"
	"net/http"

	"vault/internal/domain/models/vault"
)

// Context key type to avoid collisions
type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal adds the authenticated principal to the request context
func WithPrincipal(r *http.Request, p vault.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), principalKey, p)
	return r.WithContext(ctx)
}

// GetPrincipal retrieves the principal from context. The second return is
// false when the request never passed the auth middleware.
func GetPrincipal(r *http.Request) (vault.Principal, bool) {
	p, ok := r.Context().Value(principalKey).(vault.Principal)
	return p, ok
}
