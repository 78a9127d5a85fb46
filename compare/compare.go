// Package compare provides three-way ordering functions and comparison
// interfaces for values, including natural ordering for built-in ordered
// types and element-defined ordering via the Sortable interface.
package compare

import "cmp"

// Func is a three-way comparator. It returns a negative value when a orders
// before b, zero when the two are equivalent, and a positive value when a
// orders after b.
type Func[T any] func(a, b T) int

// Natural returns a comparator using the built-in ordering of T.
func Natural[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// Reverse returns a comparator imposing the opposite ordering of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FromLess adapts a less-than predicate into a three-way comparator.
// Two elements are considered equivalent when neither orders before the other.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// FromSortable returns a comparator backed by the element type's own
// LessThan and Equals methods.
func FromSortable[T Sortable[T]]() Func[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case a.Equals(b):
			return 0
		default:
			return 1
		}
	}
}
