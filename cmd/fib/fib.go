package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/on-the-ground/genlru/lru"
	"github.com/on-the-ground/genlru/purefn"
)

var errNegative = errors.New("n must not be negative")

// newFib returns a memoized Fibonacci that recurses through its own cache.
func newFib(capacity int, opts ...lru.Option) (*purefn.Memoizer[int, *big.Int], error) {
	var fib *purefn.Memoizer[int, *big.Int]
	fib, err := purefn.New(func(n int) (*big.Int, error) {
		switch {
		case n < 0:
			return nil, fmt.Errorf("%w: %d", errNegative, n)
		case n < 2:
			return big.NewInt(int64(n)), nil
		}

		a, err := fib.Call(n - 1)
		if err != nil {
			return nil, err
		}
		b, err := fib.Call(n - 2)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Add(a, b), nil
	}, capacity, opts...)
	return fib, err
}
