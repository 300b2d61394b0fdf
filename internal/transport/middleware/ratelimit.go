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

// RateLimiter keeps one token bucket per limit and remote host. Buckets not
// used for two cleanup intervals are dropped.
type RateLimiter struct {
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
	now     func() time.Time
}

type bucket struct {
	lim      *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// A non-positive interval disables cleanup. Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	if cleanupInterval > 0 {
		go rl.cleanup(cleanupInterval)
	}
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware allowing bursts of maxPerMinute requests per host,
// refilled evenly over a minute. Rejected requests get 429 with Retry-After.
// A non-positive maxPerMinute passes every request through.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	if maxPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	limit := strconv.Itoa(maxPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			b := rl.bucket(limit+"|"+remoteHost(r), every, maxPerMinute, now)

			w.Header().Set("X-RateLimit-Limit", limit)
			res := b.lim.ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(b.lim.TokensAt(now))))

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucket(key string, every rate.Limit, burst int, now time.Time) *bucket {
	val, _ := rl.buckets.LoadOrStore(key, &bucket{lim: rate.NewLimiter(every, burst)})
	b := val.(*bucket)
	b.mu.Lock()
	b.lastSeen = now
	b.mu.Unlock()
	return b
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now().Add(-2 * interval))
		}
	}
}

func (rl *RateLimiter) evictIdle(before time.Time) int {
	n := 0
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := b.lastSeen.Before(before)
		b.mu.Unlock()
		if idle {
			rl.buckets.Delete(key)
			n++
		}
		return true
	})
	return n
}

// remoteHost returns the client IP without the port.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
