package middlewares

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/metrics"
	"golang.org/x/time/rate"
)

// LimitRecorder counts rejected signin attempts.
type LimitRecorder interface {
	RecordSignin(result string)
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// IPRateLimiter limits requests per client IP with a token bucket each.
// Idle entries are dropped by a background cleanup loop until Stop is called.
type IPRateLimiter struct {
	rate            rate.Limit
	burst           int
	cleanupInterval time.Duration
	recorder        LimitRecorder

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewIPRateLimiter allows perMinute requests per IP with the given burst. recorder may be nil.
func NewIPRateLimiter(perMinute, burst int, cleanupInterval time.Duration, recorder LimitRecorder) *IPRateLimiter {
	rl := &IPRateLimiter{
		rate:            rate.Limit(float64(perMinute) / 60.0),
		burst:           burst,
		cleanupInterval: cleanupInterval,
		recorder:        recorder,
		limiters:        make(map[string]*ipLimiter),
		stopCh:          make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop ends the cleanup goroutine.
func (rl *IPRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware rejects requests over the limit with 429.
func (rl *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if !rl.limiter(ip).Allow() {
			logger.Log.Warnw("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			if rl.recorder != nil {
				rl.recorder.RecordSignin(metrics.SigninLimited)
			}
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
			writeJSONError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Len returns the number of tracked IPs.
func (rl *IPRateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *IPRateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastAccess = time.Now()
	return l.limiter
}

func (rl *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops entries idle for more than two cleanup intervals.
func (rl *IPRateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, l := range rl.limiters {
		if now.Sub(l.lastAccess) > ttl {
			delete(rl.limiters, ip)
		}
	}
}

// retryAfter is the number of seconds until one token is refilled.
func (rl *IPRateLimiter) retryAfter() int {
	if rl.rate <= 0 {
		return 60
	}
	sec := int(math.Ceil(1.0 / float64(rl.rate)))
	if sec < 1 {
		sec = 1
	}
	return sec
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
