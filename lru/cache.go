package lru

import (
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/on-the-ground/genlru/metrics"
)

// ErrInvalidCapacity is returned when a cache is constructed with capacity < 1.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// maxPrealloc bounds the map size hint, so a large capacity is a limit and
// not an upfront allocation.
const maxPrealloc = 1024

// Cache is a fixed-capacity, approximately least-recently-used cache.
//
// Entries live in one of two generations. New writes go to the young
// generation. When young is full, the next write rotates: old is discarded,
// young becomes old, and a fresh young generation starts. Reading a key from
// old promotes it back into young, so anything read during an epoch survives
// the next rotation.
//
// Cache is not safe for concurrent use; see Synced.
type Cache[K comparable, V any] struct {
	capacity int
	young    map[K]V
	old      map[K]V

	stats    Stats
	logger   *zap.Logger
	recorder metrics.Recorder
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	recorder metrics.Recorder
}

// WithLogger logs rotations at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecorder reports cache events to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// New creates an empty cache whose young generation holds at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	o := options{
		logger:   zap.NewNop(),
		recorder: metrics.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	hint := min(capacity, maxPrealloc)
	return &Cache[K, V]{
		capacity: capacity,
		young:    make(map[K]V, hint),
		old:      make(map[K]V, hint),
		logger:   o.logger,
		recorder: o.recorder,
	}, nil
}

// Contains reports whether key is cached. It never changes the cache.
func (c *Cache[K, V]) Contains(key K) bool {
	if _, ok := c.young[key]; ok {
		return true
	}
	_, ok := c.old[key]
	return ok
}

// Insert stores value under key in the young generation, rotating first if
// young is already full.
func (c *Cache[K, V]) Insert(key K, value V) {
	delete(c.old, key)
	if len(c.young) >= c.capacity {
		c.rotate()
	}
	c.young[key] = value
	c.recorder.Size(len(c.young), len(c.old))
}

// Get returns the value stored under key. A key found in the old generation
// is promoted into young, which may itself trigger a rotation.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if v, ok := c.young[key]; ok {
		c.hit()
		return v, true
	}

	v, ok := c.old[key]
	if !ok {
		c.stats.Misses++
		c.recorder.Miss()
		var zero V
		return zero, false
	}

	c.hit()
	c.stats.Promotions++
	c.recorder.Promotion()
	delete(c.old, key)
	c.Insert(key, v)
	return v, true
}

// Remove deletes key. Removing an absent key is a no-op.
func (c *Cache[K, V]) Remove(key K) {
	if _, ok := c.young[key]; ok {
		delete(c.young, key)
	} else if _, ok := c.old[key]; ok {
		delete(c.old, key)
	} else {
		return
	}
	c.recorder.Size(len(c.young), len(c.old))
}

// Clear drops every entry. Capacity and stats are kept.
func (c *Cache[K, V]) Clear() {
	clear(c.young)
	clear(c.old)
	c.recorder.Size(0, 0)
}

// All yields every entry, young generation first. Order within a generation
// is unspecified. The cache must not be modified while iterating.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range c.young {
			if !yield(k, v) {
				return
			}
		}
		for k, v := range c.old {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Len returns the number of entries across both generations.
func (c *Cache[K, V]) Len() int {
	return len(c.young) + len(c.old)
}

// Cap returns the capacity of the young generation.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Stats returns a copy of the counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

func (c *Cache[K, V]) hit() {
	c.stats.Hits++
	c.recorder.Hit()
}

// rotate discards old and demotes young. The discarded map is reused as the
// new young generation.
func (c *Cache[K, V]) rotate() {
	evicted := len(c.old)
	c.young, c.old = c.old, c.young
	clear(c.young)

	c.stats.Rotations++
	c.stats.Evictions += uint64(evicted)
	c.recorder.Rotation(evicted)
	c.logger.Debug("generation rotated",
		zap.Int("capacity", c.capacity),
		zap.Int("evicted", evicted),
	)
}
