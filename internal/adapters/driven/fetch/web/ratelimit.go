package web

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// MaxRetryAfter caps how long a server can make us wait.
	MaxRetryAfter = 30 * time.Second
)

// throttle paces request starts with a token bucket and defers the next
// request when a server asked for it via Retry-After.
type throttle struct {
	mu        sync.Mutex
	bucket    *rate.Limiter
	notBefore time.Time
}

func newThrottle(perSecond float64) *throttle {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &throttle{
		bucket: rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until it's safe to start a request.
func (t *throttle) Wait(ctx context.Context) error {
	if err := t.bucket.Wait(ctx); err != nil {
		return err
	}

	t.mu.Lock()
	notBefore := t.notBefore
	t.mu.Unlock()

	if wait := time.Until(notBefore); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return nil
}

// Update records the Retry-After header of a throttled response.
func (t *throttle) Update(statusCode int, header http.Header) {
	if statusCode != http.StatusTooManyRequests && statusCode != http.StatusServiceUnavailable {
		return
	}

	wait := parseRetryAfter(header.Get(HeaderRetryAfter))
	if wait <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.notBefore = time.Now().Add(wait)
}

// parseRetryAfter accepts delay-seconds or an HTTP date.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}

	var wait time.Duration
	if seconds, err := strconv.Atoi(v); err == nil {
		wait = time.Duration(seconds) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		wait = time.Until(at)
	}

	if wait > MaxRetryAfter {
		wait = MaxRetryAfter
	}
	return wait
}
