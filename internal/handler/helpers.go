package handler

import (
	"net/http"

	"vault/internal/domain/models/vault"
	"vault/internal/httputil"
)

// getPrincipal extracts the authenticated principal placed into the request
// context by the auth middleware. A missing principal means the middleware
// chain is misconfigured, so the request is rejected outright.
func getPrincipal(w http.ResponseWriter, r *http.Request) (vault.Principal, bool) {
	p, ok := httputil.GetPrincipal(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "missing authentication")
		return vault.Principal{}, false
	}
	return p, true
}
