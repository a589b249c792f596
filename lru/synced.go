package lru

import (
	"iter"
	"sync"
)

// Synced wraps a Cache with a single mutex. A rotation swaps both generations
// together, so every operation holds the lock for its whole duration.
type Synced[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewSynced creates a concurrency-safe cache. See New.
func NewSynced[K comparable, V any](capacity int, opts ...Option) (*Synced[K, V], error) {
	c, err := New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Synced[K, V]{cache: c}, nil
}

func (s *Synced[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Contains(key)
}

func (s *Synced[K, V]) Insert(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Insert(key, value)
}

func (s *Synced[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

func (s *Synced[K, V]) Remove(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(key)
}

func (s *Synced[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Clear()
}

// All yields a snapshot taken under the lock. The caller may modify the cache
// while iterating.
func (s *Synced[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		type pair struct {
			k K
			v V
		}
		s.mu.Lock()
		snapshot := make([]pair, 0, s.cache.Len())
		for k, v := range s.cache.All() {
			snapshot = append(snapshot, pair{k, v})
		}
		s.mu.Unlock()

		for _, p := range snapshot {
			if !yield(p.k, p.v) {
				return
			}
		}
	}
}

func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func (s *Synced[K, V]) Cap() int {
	return s.cache.Cap()
}

func (s *Synced[K, V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Stats()
}
