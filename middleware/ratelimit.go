package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles credential attempts per remote host. Entries
// idle longer than staleAfter are dropped by a background sweep.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const staleAfter = 10 * time.Minute

func NewLoginRateLimiter(perMinute int, burst int) *LoginRateLimiter {
	l := &LoginRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
	go l.sweep()
	return l
}

func (l *LoginRateLimiter) sweep() {
	for range time.Tick(time.Minute) {
		l.mu.Lock()
		for host, v := range l.visitors {
			if time.Since(v.lastSeen) > staleAfter {
				delete(l.visitors, host)
			}
		}
		l.mu.Unlock()
	}
}

func (l *LoginRateLimiter) allow(host string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[host]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[host] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *LoginRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !l.allow(host) {
			http.Error(w, "too many login attempts, slow down", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
