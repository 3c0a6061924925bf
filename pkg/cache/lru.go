package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry[K comparable, V any] struct {
	key     K
	value   V
	touched time.Time
}

// EvictFunc is called for every entry that leaves the cache other than
// through Put replacing its value.
type EvictFunc[K comparable, V any] func(key K, value V)

// LRU is safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	onEvict  EvictFunc[K, V]
	items    map[K]*list.Element
	order    *list.List
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithTTL expires entries not accessed for d. Zero disables expiry.
func WithTTL[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *LRU[K, V]) { c.ttl = d }
}

// WithEvictCallback calls fn for every entry evicted, expired or cleared.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// WithClock replaces time.Now, for tests.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *LRU[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// NewLRU creates a cache holding at most capacity entries. It panics when
// capacity is not positive.
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	c := &LRU[K, V]{
		capacity: capacity,
		now:      time.Now,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return zero, false
	}
	e := elem.Value.(*entry[K, V])
	now := c.now()
	if c.expired(e, now) {
		c.remove(elem)
		c.mu.Unlock()
		c.evicted(e)
		return zero, false
	}
	e.touched = now
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return e.value, true
}

// Put stores value under key and returns the value it replaced, if any.
// When the cache is full the least recently used entry is evicted.
func (c *LRU[K, V]) Put(key K, value V) (V, bool) {
	var zero V

	c.mu.Lock()
	now := c.now()
	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		old := e.value
		e.value, e.touched = value, now
		c.order.MoveToFront(elem)
		c.mu.Unlock()
		return old, true
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, touched: now})
	var gone []*entry[K, V]
	for c.order.Len() > c.capacity {
		gone = append(gone, c.remove(c.order.Back()))
	}
	c.mu.Unlock()

	c.evicted(gone...)
	return zero, false
}

// Remove deletes key and returns its value.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return zero, false
	}
	e := c.remove(elem)
	c.mu.Unlock()

	c.evicted(e)
	return e.value, true
}

// Len counts entries, including expired ones not yet collected.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Prune drops expired entries and returns how many were removed.
func (c *LRU[K, V]) Prune() int {
	if c.ttl <= 0 {
		return 0
	}

	c.mu.Lock()
	now := c.now()
	var gone []*entry[K, V]
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if e := elem.Value.(*entry[K, V]); c.expired(e, now) {
			gone = append(gone, c.remove(elem))
		}
		elem = prev
	}
	c.mu.Unlock()

	c.evicted(gone...)
	return len(gone)
}

// Clear empties the cache, calling the evict callback for every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	gone := make([]*entry[K, V], 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		gone = append(gone, elem.Value.(*entry[K, V]))
	}
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
	c.mu.Unlock()

	c.evicted(gone...)
}

func (c *LRU[K, V]) expired(e *entry[K, V], now time.Time) bool {
	return c.ttl > 0 && now.Sub(e.touched) > c.ttl
}

// remove must be called with the lock held.
func (c *LRU[K, V]) remove(elem *list.Element) *entry[K, V] {
	e := c.order.Remove(elem).(*entry[K, V])
	delete(c.items, e.key)
	return e
}

func (c *LRU[K, V]) evicted(entries ...*entry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range entries {
		c.onEvict(e.key, e.value)
	}
}
