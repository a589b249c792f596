package purefn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/genlru/lru"
	"github.com/on-the-ground/genlru/purefn"
)

func TestNew_InvalidCapacity(t *testing.T) {
	m, err := purefn.New(func(i int) (int, error) { return i, nil }, 0)
	assert.ErrorIs(t, err, lru.ErrInvalidCapacity)
	assert.Nil(t, m)
}

func TestMemoizer_CallsOncePerArgument(t *testing.T) {
	calls := map[int]int{}
	square := func(i int) (int, error) {
		calls[i]++
		return i * i, nil
	}
	m, err := purefn.New(square, 8)
	require.NoError(t, err)

	for range 3 {
		for i := range 5 {
			got, err := m.Call(i)
			require.NoError(t, err)
			assert.Equal(t, i*i, got)
		}
	}

	for i := range 5 {
		assert.Equal(t, 1, calls[i], "argument %d", i)
	}
}

type pair struct {
	a, b int
}

func TestMemoizer_StructKey(t *testing.T) {
	count := 0
	m, err := purefn.New(func(p pair) (int, error) {
		count++
		return p.a - p.b, nil
	}, 4)
	require.NoError(t, err)

	v, _ := m.Call(pair{5, 2})
	assert.Equal(t, 3, v)
	v, _ = m.Call(pair{2, 5})
	assert.Equal(t, -3, v)
	_, _ = m.Call(pair{5, 2})
	assert.Equal(t, 2, count)
}

func TestMemoizer_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("boom")
	count := 0
	fail := true
	m, err := purefn.New(func(s string) (int, error) {
		count++
		if fail {
			return 0, boom
		}
		return len(s), nil
	}, 4)
	require.NoError(t, err)

	_, err = m.Call("abc")
	assert.ErrorIs(t, err, boom)
	assert.False(t, m.Cache().Contains("abc"))

	fail = false
	v, err := m.Call("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, count)
}

func TestMemoizer_RecursiveSharesCache(t *testing.T) {
	count := 0
	var fib *purefn.Memoizer[int, uint64]
	fib, err := purefn.New(func(n int) (uint64, error) {
		count++
		if n < 2 {
			return uint64(n), nil
		}
		a, err := fib.Call(n - 1)
		if err != nil {
			return 0, err
		}
		b, err := fib.Call(n - 2)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	}, 16)
	require.NoError(t, err)

	v, err := fib.Call(90)
	require.NoError(t, err)
	assert.Equal(t, uint64(2880067194370816120), v)
	assert.Equal(t, 91, count, "each index computed once")
}

func TestMemoizer_RecursiveErrorPropagates(t *testing.T) {
	errNegative := errors.New("negative")
	var fact *purefn.Memoizer[int, int]
	fact, err := purefn.New(func(n int) (int, error) {
		if n < 0 {
			return 0, errNegative
		}
		if n == 0 {
			return 1, nil
		}
		prev, err := fact.Call(n - 1)
		return n * prev, err
	}, 4)
	require.NoError(t, err)

	v, err := fact.Call(5)
	require.NoError(t, err)
	assert.Equal(t, 120, v)

	_, err = fact.Call(-1)
	assert.ErrorIs(t, err, errNegative)
	assert.False(t, fact.Cache().Contains(-1))
}
