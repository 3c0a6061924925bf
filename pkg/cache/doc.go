// Package cache provides a small generic LRU cache with an optional idle
// TTL.
//
// The site uses it to keep per-visitor carousel sessions: a session is
// touched on every control request, the oldest sessions are dropped when
// the cache is full, and sessions idle for longer than the TTL are
// expired on access. The evict callback runs outside the cache lock, so it
// may stop goroutines or call back into the cache.
package cache
