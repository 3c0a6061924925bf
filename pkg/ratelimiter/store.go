package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state.
type Store interface {
	// ConsumeTokens takes tokens from key's bucket when enough are left.
	// tokens == 0 only refreshes the bucket. Denied calls leave the bucket
	// untouched and report allowed == false.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, allowed bool, err error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}
