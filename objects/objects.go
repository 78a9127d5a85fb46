// Package objects provides null-safe helpers for working with arbitrary
// values: nil detection across reference kinds, defaulting, and picking the
// first usable value from a list of candidates.
package objects

import (
	"reflect"

	"github.com/jaredjstewart/cp-elements/optional"
)

// IsNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// DefaultIfNil returns value unless it is nilish, in which case it returns
// fallback.
func DefaultIfNil[T any](value, fallback T) T {
	if IsNilish(value) {
		return fallback
	}

	return value
}

// DefaultIfZero returns value unless it is the zero value of T, in which
// case it returns fallback. Zero-ness is determined by a deep comparison,
// so it works for struct and slice types as well as primitives.
func DefaultIfZero[T any](value, fallback T) T {
	var zero T

	if reflect.DeepEqual(value, zero) {
		return fallback
	}

	return value
}

// FirstNonNil returns the first value that is not nilish, or an absent
// optional when every candidate is nilish (or none were given).
func FirstNonNil[T any](values ...T) optional.Value[T] {
	for _, value := range values {
		if !IsNilish(value) {
			return optional.Some(value)
		}
	}

	return optional.None[T]()
}
