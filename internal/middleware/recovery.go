package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"vault/internal/httputil"
)

// Recovery converts a handler panic into a problem+json 500 response.
// The stack goes to the log; the response body stays generic, matching the
// policy that 500-class details never leave the server.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					logger.Error("panic recovered",
						"panic", v,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
