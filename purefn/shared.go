package purefn

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/on-the-ground/genlru/lru"
)

// Shared is a Memoizer safe for concurrent use. Concurrent misses on the same
// argument run the function once and share its result.
//
// A function must not call Shared with its own argument recursively; the
// nested call would wait on itself.
type Shared[A comparable, R any] struct {
	cache *lru.Synced[A, R]
	fn    func(A) (R, error)
	group singleflight.Group
}

func NewShared[A comparable, R any](
	fn func(A) (R, error),
	capacity int,
	opts ...lru.Option,
) (*Shared[A, R], error) {
	cache, err := lru.NewSynced[A, R](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Shared[A, R]{cache: cache, fn: fn}, nil
}

// flight is the result of one deduplicated call, tagged with the argument it
// was computed for.
type flight[A comparable, R any] struct {
	args A
	res  R
}

// Call behaves like Memoizer.Call.
//
// Flights are keyed by the argument's type and %#v form. Distinct arguments
// can still print alike (interface fields inside a struct key); a caller that
// joins a flight for a different argument computes its own result.
func (s *Shared[A, R]) Call(args A) (R, error) {
	if v, ok := s.cache.Get(args); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(fmt.Sprintf("%T\x00%#v", args, args), func() (any, error) {
		return s.compute(args)
	})
	if err != nil {
		var zero R
		return zero, err
	}
	if f := v.(flight[A, R]); f.args == args {
		return f.res, nil
	}

	f, err := s.compute(args)
	if err != nil {
		var zero R
		return zero, err
	}
	return f.res, nil
}

// compute rechecks the cache without counting a second miss, then runs fn.
func (s *Shared[A, R]) compute(args A) (flight[A, R], error) {
	if s.cache.Contains(args) {
		if v, ok := s.cache.Get(args); ok {
			return flight[A, R]{args: args, res: v}, nil
		}
	}
	v, err := s.fn(args)
	if err != nil {
		return flight[A, R]{}, err
	}
	s.cache.Insert(args, v)
	return flight[A, R]{args: args, res: v}, nil
}

// Cache returns the underlying cache.
func (s *Shared[A, R]) Cache() *lru.Synced[A, R] {
	return s.cache
}
