package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/obaro89/afridev-backend/internal/transport"
)

// RateLimit limits requests per client IP. A non-positive window falls back
// to one minute.
func RateLimit(requests int, window time.Duration) func(next http.Handler) http.Handler {
	if window <= 0 {
		window = time.Minute
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			transport.WriteMsg(w, http.StatusTooManyRequests, "Too many requests, please try again later")
		}),
	)
}
