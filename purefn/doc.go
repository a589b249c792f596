// Package purefn memoizes pure functions on top of the lru generation cache.
//
// Memoizer wraps a func(A) (R, error) and an owned lru.Cache keyed by the
// argument. Failed calls are not cached, so a retry runs the function again.
// A recursive function memoizes itself by calling back into the same
// Memoizer, sharing one cache across every nested call:
//
//	var fib *purefn.Memoizer[int, int]
//	fib, _ = purefn.New(func(n int) (int, error) {
//	    if n < 2 {
//	        return n, nil
//	    }
//	    a, _ := fib.Call(n - 1)
//	    b, _ := fib.Call(n - 2)
//	    return a + b, nil
//	}, 128)
//
// The Tableize family (TableizeI1O1 to TableizeI4O2) wraps plain functions of
// up to four arguments and one or two results, keeping the original
// signature. Arguments implementing fmt.Stringer are keyed by their string
// form.
//
// Memoizer and the functions returned by the Tableize family are not safe for
// concurrent use, since they share one unlocked cache. Shared is the
// concurrency-safe variant. It locks the cache and collapses
// concurrent misses on the same argument into a single call.
//
// Only memoize functions that are deterministic and free of side effects. The
// package cannot check this.
package purefn
