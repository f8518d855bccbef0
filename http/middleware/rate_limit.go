package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRate   rate.Limit = 5
	defaultBurst             = 20
	visitorMaxAge            = time.Hour
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// Visitors maps each IP address to its Visitor.
type Visitors struct {
	mu    sync.Mutex
	val   map[string]*Visitor
	limit rate.Limit
	burst int
}

// NewVisitors constructs Visitors limiting each IP address to limit requests a second,
// with bursts of up to burst.
// Non-positive values fall back to 5 requests a second with bursts of up to 20.
func NewVisitors(limit rate.Limit, burst int) *Visitors {
	if limit <= 0 {
		limit = defaultRate
	}
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Visitors{val: make(map[string]*Visitor), limit: limit, burst: burst}
}

// Fetch retrieves the Visitor for ip, creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) *Visitor {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = &Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
		vs.val[ip] = v
	}
	v.LastSeen = time.Now().UTC()

	return v
}

// Len reports how many visitors are tracked.
func (vs *Visitors) Len() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	return len(vs.val)
}

// cleanup forgets visitors not seen within visitorMaxAge.
func (vs *Visitors) cleanup() {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorMaxAge {
			delete(vs.val, ip)
		}
	}
}

// RateLimit responds 429 Too Many Requests to clients exceeding their Visitor's limit.
// Clients are told apart by GetIPAddress.
func RateLimit(vs *Visitors) Adapter {
	if vs == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !vs.Fetch(GetIPAddress(r.Header)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			vs.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
