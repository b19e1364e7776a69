package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// RequestID tags every request with an id for log correlation. Incoming
// X-Request-Id values from trusted proxies are kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Request-Id"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}
