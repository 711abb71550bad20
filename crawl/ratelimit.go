package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/kamar"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the per-domain request rate used when reading
// result pages.
const DefaultRequestsPerSecond = 2

var _ kamar.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Requests to different domains proceed concurrently; requests to one
// domain are spaced by the configured rate. "www.example.com",
// "EXAMPLE.com" and "example.com:443" share one bucket.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain, with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	key := normalizeDomain(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

func normalizeDomain(domain string) string {
	if host, _, err := net.SplitHostPort(domain); err == nil {
		domain = host
	}
	domain = strings.ToLower(domain)
	return strings.TrimPrefix(domain, "www.")
}
