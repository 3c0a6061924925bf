package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript refills and consumes atomically.
// KEYS[1] bucket key; ARGV capacity, rate, interval ms, tokens, now ms, ttl ms.
// Returns {remaining, reset_at_ms, allowed}.
var consumeScript = redis.NewScript(`
local capacity  = tonumber(ARGV[1])
local rate      = tonumber(ARGV[2])
local interval  = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local now       = tonumber(ARGV[5])
local ttl       = tonumber(ARGV[6])

local state  = redis.call('HMGET', KEYS[1], 'tokens', 'last_refill')
local tokens = tonumber(state[1])
local last   = tonumber(state[2])
if tokens == nil or last == nil then
  tokens = capacity
  last = now
end

local intervals = math.floor((now - last) / interval)
local cap = math.floor(capacity / rate) + 1
if intervals > cap then intervals = cap end
if intervals > 0 then
  tokens = math.min(tokens + intervals * rate, capacity)
  last = last + intervals * interval
  if tokens == capacity then last = now end
end

local allowed = 0
if requested <= tokens then
  tokens = tokens - requested
  allowed = 1
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'last_refill', last)
redis.call('PEXPIRE', KEYS[1], ttl)
return {tokens, last + interval, allowed}
`)

// RedisStore keeps buckets in Redis so every instance shares them.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces bucket keys. Default "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithRedisNow overrides the clock used for refill math.
func WithRedisNow(now func() time.Time) RedisStoreOption {
	return func(s *RedisStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRedisStore keeps buckets in client under the "ratelimit:" prefix.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now reads the clock used for refill math.
func (s *RedisStore) Now() time.Time { return s.now() }

func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, bool, error) {
	interval := config.RefillInterval.Milliseconds()
	if interval <= 0 {
		interval = 1
	}
	// Keep the key until a full bucket would have refilled.
	ttl := interval * int64(config.Capacity/config.RefillRate+2)

	res, err := consumeScript.Run(ctx, s.client, []string{s.prefix + key},
		config.Capacity,
		config.RefillRate,
		interval,
		tokens,
		s.now().UnixMilli(),
		ttl,
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, false, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 3 {
		return 0, time.Time{}, false, ErrStoreUnavailable
	}
	return int(res[0]), time.UnixMilli(res[1]), res[2] == 1, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
