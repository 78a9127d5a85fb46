package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// SelectionSorter implements selection sort: for each position from the
// front, find the minimum of the remaining elements and swap it into place.
// O(n²) regardless of input order, but never more than n-1 swaps. Not
// stable.
type SelectionSorter[T any] struct{}

var _ Sorter[int] = SelectionSorter[int]{}

func NewSelectionSorter[T any]() SelectionSorter[T] {
	return SelectionSorter[T]{}
}

func (SelectionSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(SelectionSort, list, cmp, selectionSort[T])
}

func selectionSort[T any](list []T, cmp compare.Func[T]) {
	for i := range len(list) - 1 {
		min := i

		for j := i + 1; j < len(list); j++ {
			if cmp(list[j], list[min]) < 0 {
				min = j
			}
		}

		if min != i {
			list[i], list[min] = list[min], list[i]
		}
	}
}
