package http

import (
	"net/http"
	"strings"

	"github.com/srujan0404/coffee-main/pkg/logger"
)

// UserIDFromHeader reads the X-User-ID header (injected by the API gateway
// after token validation) and stores it in the request context. Requests
// without it are rejected with 401.
func UserIDFromHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := r.Header.Get("X-User-ID")
		if uid == "" {
			writeJSON(w, http.StatusUnauthorized, response{
				Error: &errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(logger.WithUserID(r.Context(), uid)))
	})
}

// userID extracts the authenticated user ID stored by UserIDFromHeader.
func userID(r *http.Request) string {
	return logger.UserIDFromContext(r.Context())
}

// ContentTypeJSON rejects mutating requests whose declared Content-Type is
// not JSON. Requests without a Content-Type pass through.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				writeJSON(w, http.StatusUnsupportedMediaType, response{
					Error: &errorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Content-Type must be application/json"},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
