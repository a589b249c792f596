package purefn

import (
	"github.com/on-the-ground/genlru/lru"
)

// Memoizer caches the results of a pure function by its argument.
//
// Functions of several arguments take a struct key, which makes the key
// order-sensitive and arity-sensitive. A Memoizer is not safe for concurrent
// use; see Shared.
type Memoizer[A comparable, R any] struct {
	cache *lru.Cache[A, R]
	fn    func(A) (R, error)
}

// New memoizes fn in a cache of the given capacity.
func New[A comparable, R any](
	fn func(A) (R, error),
	capacity int,
	opts ...lru.Option,
) (*Memoizer[A, R], error) {
	cache, err := lru.New[A, R](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Memoizer[A, R]{cache: cache, fn: fn}, nil
}

// Call returns the cached result for args, computing and storing it on a miss.
// Errors from the wrapped function are returned as is and never cached.
//
// A recursive function memoizes itself by calling Call on the same Memoizer.
func (m *Memoizer[A, R]) Call(args A) (R, error) {
	return m.load(args, func() (R, error) {
		return m.fn(args)
	})
}

// Cache returns the underlying cache.
func (m *Memoizer[A, R]) Cache() *lru.Cache[A, R] {
	return m.cache
}

func (m *Memoizer[A, R]) load(key A, compute func() (R, error)) (R, error) {
	if v, ok := m.cache.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero R
		return zero, err
	}
	m.cache.Insert(key, v)
	return v, nil
}
