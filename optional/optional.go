// Package optional provides a type-safe value that may or may not be
// present, modeling absence explicitly instead of with nil.
package optional

// Value represents a value of type T that may or may not be present.
// Use Some to create a present Value, or None for an absent one.
// The zero value of Value is absent.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and a boolean indicating whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or the given default otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Map applies f to the contained value when present, producing a new Value.
// An absent input produces an absent output without calling f.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if value, ok := o.Get(); ok {
		return Some(f(value))
	}

	return None[U]()
}
