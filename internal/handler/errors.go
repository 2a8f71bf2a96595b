package handler

import (
	"errors"
	"net/http"

	"vault/internal/domain"
	"vault/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		status := httpErr.StatusCode()
		if status == http.StatusInternalServerError {
			// Integrity faults carry folder ids; keep those out of responses
			httputil.RespondError(w, status, "internal server error")
			return
		}
		httputil.RespondError(w, status, httpErr.Error())
		return
	}

	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}
