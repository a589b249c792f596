package config

import (
	"fmt"

	"github.com/on-the-ground/genlru/shared/helper"
)

// Bindings is a flat set of dotted configuration keys. A key missing locally
// is looked up in the parent scope.
type Bindings struct {
	values map[string]any
	parent *Bindings
}

// NewBindings creates a root scope. A nil map is treated as empty.
func NewBindings(values map[string]any) *Bindings {
	if values == nil {
		values = make(map[string]any)
	}
	return &Bindings{values: values}
}

// With returns a child scope whose values shadow b.
func (b *Bindings) With(values map[string]any) *Bindings {
	child := NewBindings(values)
	child.parent = b
	return child
}

// Lookup returns the innermost value bound to key.
func (b *Bindings) Lookup(key string) (any, bool) {
	for scope := b; scope != nil; scope = scope.parent {
		if v, ok := scope.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Lookup returns the value bound to key if it is a T.
func Lookup[T any](b *Bindings, key string) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return b.Lookup(key)
	})
}

// bind copies the value bound to key into dst. An unbound key leaves dst
// untouched; a value of the wrong type is an error.
func bind[T any](b *Bindings, key string, dst *T) error {
	raw, ok := b.Lookup(key)
	if !ok {
		return nil
	}
	v, err := helper.GetTypedValueOf[T](func() (any, error) {
		return raw, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	*dst = v
	return nil
}
