package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left after this call
	ResetAt   time.Time // next refill
	allowed   bool
	wait      time.Duration
}

// Allowed reports whether the requested tokens were granted.
func (r *Result) Allowed() bool {
	return r.allowed
}

// RetryAfter returns how long to wait before the next attempt, measured
// on the store's clock. Zero when the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.allowed {
		return 0
	}
	return r.wait
}

// RetryAfterSeconds is RetryAfter in whole seconds, rounded up. A denied
// request always waits at least one second.
func (r *Result) RetryAfterSeconds() int {
	if r.allowed {
		return 0
	}
	return max(int((r.wait+time.Second-1)/time.Second), 1)
}

// Config defines the token bucket.
type Config struct {
	Capacity       int           // burst limit
	RefillRate     int           // tokens added per interval
	RefillInterval time.Duration // refill period
}
