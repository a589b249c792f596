package purefn

import (
	"fmt"
	"math"

	"github.com/on-the-ground/genlru/lru"
	"github.com/on-the-ground/genlru/shared/helper"
)

type ComparableOrStringer any
type ComparableOrString any

const maxArity = 4

// argKey is the cache key of a tableized call.
type argKey struct {
	arity int
	args  [maxArity]ComparableOrString
}

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
		opts...,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
		opts...,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxTableSize,
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		maxTableSize,
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

// tableKey keys Stringers by their String form so that non-comparable
// Stringer types can still be tableized.
func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func newArgKey(args []ComparableOrStringer) argKey {
	key := argKey{arity: len(args)}
	for i, arg := range args {
		key.args[i] = tableKey(arg)
	}
	return key
}

// tableize panics if maxTableSize is zero, or at call time if an argument is
// neither comparable nor a fmt.Stringer. On 32-bit platforms maxTableSize is
// clamped to math.MaxInt.
func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	maxTableSize uint32,
	opts ...lru.Option,
) func(...ComparableOrStringer) O {
	capacity := int(min(uint64(maxTableSize), uint64(math.MaxInt)))
	memo := &Memoizer[argKey, O]{
		cache: helper.Must(lru.New[argKey, O](capacity, opts...)),
	}
	return func(args ...ComparableOrStringer) O {
		v, _ := memo.load(newArgKey(args), func() (O, error) {
			return pureFn(args...), nil
		})
		return v
	}
}
