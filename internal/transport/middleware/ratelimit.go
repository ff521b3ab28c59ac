package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an untouched client bucket survives cleanup.
const idleTTL = 10 * time.Minute

// RateLimiter implements per-client token bucket rate limiting.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter allowing requestsPerMinute per client
// with the given burst. Idle clients are evicted every cleanupInterval.
// Call Stop() on shutdown.
func NewRateLimiter(requestsPerMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:   burst,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Middleware returns middleware that rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := rl.limiterFor(clientKey(r)).ReserveN(rl.now(), 1)
			if !res.OK() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			if delay := res.DelayFrom(rl.now()); delay > 0 {
				res.CancelAt(rl.now())
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = rl.now()
	return c.limiter
}

// evictIdle drops clients not seen since before cutoff.
func (rl *RateLimiter) evictIdle(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now().Add(-idleTTL))
		}
	}
}

// clientKey identifies the caller by remote IP, without the port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
