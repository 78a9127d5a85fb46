package compare

// Comparable is a generic interface for types that can compare themselves
// for equality. Implementations decide what equality means for the type.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with an ordering. Types implementing Sortable
// carry their own natural order and can be sorted without an explicit
// comparator.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
