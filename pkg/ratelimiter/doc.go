// Package ratelimiter limits form submissions with a token bucket.
//
// A Bucket refills RefillRate tokens every RefillInterval up to Capacity.
// State lives in a Store: MemoryStore for a single instance, RedisStore
// when several instances share one limit.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.Composite(clientip.GetIP))).
//		Post("/contact", h.Contact)
//
// A denied request does not consume tokens. The middleware sets the
// X-RateLimit-* headers and Retry-After, then calls the OnLimited hook
// (plain 429 by default).
package ratelimiter
