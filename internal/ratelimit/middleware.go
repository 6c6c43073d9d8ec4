package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// KeyFunc derives the limiter key from an inbound request.
type KeyFunc func(r *http.Request) string

// ClientAddress keys requests by the RemoteAddr host, ignoring the port.
// X-Forwarded-For is deliberately not consulted: nothing guarantees a
// trustworthy proxy in front of this service.
func ClientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return "unknown"
}

// Middleware rejects requests over the limiter's budget with 429 and a
// Retry-After hint of the window size.
func Middleware(l *Limiter, key KeyFunc) func(next http.Handler) http.Handler {
	if key == nil {
		key = ClientAddress
	}

	retryAfter := strconv.Itoa(int(math.Ceil(l.Window().Seconds())))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(key(r)) {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "too many requests, try again later", http.StatusTooManyRequests)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
