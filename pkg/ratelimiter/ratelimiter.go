package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Limiter is what Middleware needs from a Bucket.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// clock is implemented by stores that read their own time source.
type clock interface {
	Now() time.Time
}

// Bucket implements a token bucket on top of a Store.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket validates config and returns a bucket using store.
func NewBucket(store Store, config Config) (*Bucket, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: config}, nil
}

// Config returns the bucket configuration.
func (b *Bucket) Config() Config { return b.config }

// Allow takes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key. n must be between 1 and the capacity.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if n > b.config.Capacity {
		return nil, fmt.Errorf("%w: %d exceeds capacity %d", ErrInvalidTokenCount, n, b.config.Capacity)
	}
	return b.consume(ctx, key, n)
}

// Status returns the current state without consuming tokens.
func (b *Bucket) Status(ctx context.Context, key string) (*Result, error) {
	return b.consume(ctx, key, 0)
}

// Reset refills key's bucket.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return b.store.Reset(ctx, key)
}

func (b *Bucket) consume(ctx context.Context, key string, n int) (*Result, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	remaining, resetAt, allowed, err := b.store.ConsumeTokens(ctx, key, n, b.config)
	if err != nil {
		return nil, err
	}
	now := time.Now
	if c, ok := b.store.(clock); ok {
		now = c.Now
	}
	return &Result{
		Limit:     b.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
		allowed:   allowed,
		wait:      max(resetAt.Sub(now()), 0),
	}, nil
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
