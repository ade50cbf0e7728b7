package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds the response headers every API response carries.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; img-src 'self'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter caps requests per client IP over a sliding window. It guards
// the public write endpoints (contact form, uploads).
type RateLimiter struct {
	limit  int
	window time.Duration
	// trustedProxies is how many reverse proxies append to X-Forwarded-For.
	trustedProxies int
	now            func() time.Time

	mu     sync.Mutex
	hits   map[string][]time.Time
	checks int
}

// NewRateLimiter allows limit requests per window for each client. Clients
// are keyed by the connection's remote address until WithTrustedProxies says
// otherwise.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// WithTrustedProxies sets how many reverse proxies in front of the server
// append to X-Forwarded-For. With 0 the header is ignored.
func (rl *RateLimiter) WithTrustedProxies(n int) *RateLimiter {
	if n < 0 {
		n = 0
	}
	rl.trustedProxies = n
	return rl
}

// pruneEvery sets how often Allow sweeps idle clients out of the map.
const pruneEvery = 256

// Allow records a request from client and reports whether it fits in the
// window. When it does not, retryAfter is how long until the oldest hit expires.
func (rl *RateLimiter) Allow(client string) (ok bool, retryAfter time.Duration) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checks++
	if rl.checks%pruneEvery == 0 {
		for c, ts := range rl.hits {
			if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
				delete(rl.hits, c)
			}
		}
	}

	ts := dropBefore(rl.hits[client], cutoff)
	if len(ts) >= rl.limit {
		rl.hits[client] = ts
		return false, ts[0].Add(rl.window).Sub(now)
	}
	rl.hits[client] = append(ts, now)
	return true, 0
}

// dropBefore removes timestamps at or before cutoff; ts is ordered oldest first.
func dropBefore(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}

// Middleware rejects over-limit requests with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := rl.Allow(rl.clientIP(r))
		if !ok {
			secs := int(retryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP takes the address appended by the outermost trusted proxy, so
// entries a client forges at the left of X-Forwarded-For are ignored.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxies > 0 {
		parts := strings.Split(xff, ",")
		if idx := len(parts) - rl.trustedProxies; idx >= 0 {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
