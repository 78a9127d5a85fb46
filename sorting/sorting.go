package sorting

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jaredjstewart/cp-elements/assert"
	"github.com/jaredjstewart/cp-elements/compare"
	"github.com/jaredjstewart/cp-elements/errors"
)

var (
	// ErrNilSequence indicates Sort was invoked with a nil slice.
	ErrNilSequence = fmt.Errorf("%w: sequence must not be nil", errors.ErrIllegalArgument)

	// ErrUnsupportedSortType indicates the factory was given a tag outside
	// the closed SortType enumeration.
	ErrUnsupportedSortType = fmt.Errorf("%w: unsupported sort type", errors.ErrIllegalArgument)
)

// Sorter sorts a slice in place.
type Sorter[T any] interface {
	// Sort orders list non-decreasingly per cmp and returns the same slice.
	// A nil cmp selects the element type's natural ordering, which requires
	// the elements to implement compare.Sortable. The multiset of elements
	// is always preserved.
	//
	// A nil list fails with ErrNilSequence. Slices of length 0 or 1 are
	// returned unchanged.
	Sort(list []T, cmp compare.Func[T]) ([]T, error)
}

// run applies the shared sort contract around an algorithm body: nil-slice
// rejection, trivial sizes, comparator resolution, and instrumentation.
func run[T any](algorithm SortType, list []T, cmp compare.Func[T], body func(list []T, cmp compare.Func[T])) (sorted []T, err error) {
	start := time.Now()

	defer func() {
		observeSort(algorithm, start, err)
	}()

	if list == nil {
		return nil, ErrNilSequence
	}

	if len(list) < 2 {
		return list, nil
	}

	cmp, err = ordering(list, cmp)
	if err != nil {
		return nil, err
	}

	body(list, cmp)

	slog.Debug("sorted sequence",
		"algorithm", algorithm,
		"size", len(list),
		"duration", time.Since(start))

	return list, nil
}

// ordering resolves the effective comparator: a caller-supplied function
// wins, otherwise the element type must carry its own order via
// compare.Sortable. Resolution probes the first element, so it only runs
// for slices with something to compare.
func ordering[T any](list []T, cmp compare.Func[T]) (compare.Func[T], error) {
	if cmp != nil {
		return cmp, nil
	}

	assert.NonEmptySlice(list, "ordering resolution needs at least one element")

	if _, err := assert.Type[compare.Sortable[T]](any(list[0])); err != nil {
		return nil, fmt.Errorf("no comparator supplied and elements are not naturally ordered: %w", err)
	}

	return func(a, b T) int {
		sa := any(a).(compare.Sortable[T]) //nolint:forcetypeassert // checked above

		switch {
		case sa.LessThan(b):
			return -1
		case sa.Equals(b):
			return 0
		default:
			return 1
		}
	}, nil
}
