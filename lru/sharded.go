package lru

import (
	"errors"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidShards is returned when a sharded cache is constructed with fewer
// than one shard.
var ErrInvalidShards = errors.New("number of shards must be positive")

// Hasher maps a key to a shard selector.
type Hasher[K comparable] func(K) uint64

// StringHasher hashes string keys with xxhash.
func StringHasher[K ~string](key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// StringerHasher hashes the String form of a key with xxhash.
func StringerHasher[K interface {
	comparable
	fmt.Stringer
}](key K) uint64 {
	return xxhash.Sum64String(key.String())
}

// Sharded spreads keys over independent Synced caches. Each shard rotates on
// its own, so eviction is approximate per shard rather than across the whole
// cache.
type Sharded[K comparable, V any] struct {
	shards []*Synced[K, V]
	hash   Hasher[K]
}

// NewSharded creates n shards, each with the given capacity.
func NewSharded[K comparable, V any](n, capacity int, hash Hasher[K], opts ...Option) (*Sharded[K, V], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShards, n)
	}
	if hash == nil {
		return nil, errors.New("hasher is required")
	}

	shards := make([]*Synced[K, V], n)
	for i := range shards {
		s, err := NewSynced[K, V](capacity, opts...)
		if err != nil {
			return nil, err
		}
		shards[i] = s
	}
	return &Sharded[K, V]{shards: shards, hash: hash}, nil
}

func (s *Sharded[K, V]) shard(key K) *Synced[K, V] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[s.hash(key)%uint64(len(s.shards))]
}

func (s *Sharded[K, V]) Contains(key K) bool   { return s.shard(key).Contains(key) }
func (s *Sharded[K, V]) Insert(key K, value V) { s.shard(key).Insert(key, value) }
func (s *Sharded[K, V]) Get(key K) (V, bool)   { return s.shard(key).Get(key) }
func (s *Sharded[K, V]) Remove(key K)          { s.shard(key).Remove(key) }

func (s *Sharded[K, V]) Clear() {
	for _, sh := range s.shards {
		sh.Clear()
	}
}

// All yields each shard's snapshot in shard order.
func (s *Sharded[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, sh := range s.shards {
			for k, v := range sh.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

func (s *Sharded[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		n += sh.Len()
	}
	return n
}

// Stats sums the counters of every shard.
func (s *Sharded[K, V]) Stats() Stats {
	var total Stats
	for _, sh := range s.shards {
		st := sh.Stats()
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Promotions += st.Promotions
		total.Rotations += st.Rotations
		total.Evictions += st.Evictions
	}
	return total
}

// Shards returns the number of shards.
func (s *Sharded[K, V]) Shards() int {
	return len(s.shards)
}
