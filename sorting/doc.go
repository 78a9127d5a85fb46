// Package sorting provides in-place sorting of slices behind a common
// [Sorter] contract, with eight selectable algorithms: bubble, comb, heap,
// insertion, merge, quick, selection, and shell sort.
//
// # Overview
//
// Every sorter mutates the given slice in place and returns the same slice.
// The result is always a permutation of the input, ordered non-decreasingly
// by the supplied comparator. Sorters are stateless and reusable; a single
// instance may be shared across goroutines as long as each call operates on
// a slice no other goroutine is touching.
//
// # Choosing a comparator
//
// Sort takes a [github.com/jaredjstewart/cp-elements/compare.Func]. Passing
// nil selects the element type's natural ordering, which requires the
// element type to implement
// [github.com/jaredjstewart/cp-elements/compare.Sortable]; otherwise the
// sort fails with a wrapped
// [github.com/jaredjstewart/cp-elements/errors.ErrWrongType].
//
//	sorter := sorting.NewInsertionSorter[int]()
//	sorted, err := sorter.Sort([]int{5, 3, 1, 4, 2}, compare.Natural[int]())
//	// sorted == []int{1, 2, 3, 4, 5}
//
// # Selecting an algorithm at runtime
//
// [CreateSorter] maps a [SortType] tag to a fresh sorter instance:
//
//	sorter, err := sorting.CreateSorter[string](sorting.MergeSort)
//	if err != nil {
//	    return err
//	}
//	sorted, err := sorter.Sort(names, compare.NaturalStrings())
//
// # Stability
//
// Bubble, insertion, and merge sort are stable: elements comparing equal
// keep their relative input order. Comb, heap, quick, selection, and shell
// sort make no such guarantee. Pick a stable algorithm when equal elements
// must not be reordered.
//
// # Failure behavior
//
// A failed sort (nil slice, unresolvable ordering) leaves the slice
// untouched, but callers must not assume atomicity in general: a comparator
// that panics mid-sort leaves the slice in an algorithm-dependent partially
// reordered state, still a permutation of the input.
package sorting
