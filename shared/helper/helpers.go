package helper

import (
	"fmt"
)

// GetTypedValueOf asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// GetTypedValueOf2 asserts the result of a comma-ok getter to T.
// ok is false when the getter finds nothing or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// Must returns v, panicking if err is non-nil.
// Use when failure is a programming error, such as a constant capacity of zero.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
