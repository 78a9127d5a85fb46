package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// InsertionSorter implements insertion sort: grow a sorted prefix by
// shifting each next element leftward to its position. O(n²) worst case,
// O(n) on nearly sorted input. Stable.
type InsertionSorter[T any] struct{}

var _ Sorter[int] = InsertionSorter[int]{}

func NewInsertionSorter[T any]() InsertionSorter[T] {
	return InsertionSorter[T]{}
}

func (InsertionSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(InsertionSort, list, cmp, insertionSort[T])
}

func insertionSort[T any](list []T, cmp compare.Func[T]) {
	insertionSortGap(list, 1, cmp)
}

// insertionSortGap runs insertion sort over the interleaved subsequences of
// elements gap apart. With gap 1 this is plain, stable insertion sort; it
// is also the inner pass of shell sort. Only strictly greater elements are
// shifted, so equal elements never cross.
func insertionSortGap[T any](list []T, gap int, cmp compare.Func[T]) {
	for i := gap; i < len(list); i++ {
		value := list[i]

		j := i
		for ; j >= gap && cmp(value, list[j-gap]) < 0; j -= gap {
			list[j] = list[j-gap]
		}

		list[j] = value
	}
}
