package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// HeapSorter implements heap sort: build an in-place binary max-heap, then
// repeatedly swap the maximum to the end of the shrinking unsorted region
// and restore the heap. O(n log n) regardless of input order. In-place,
// not stable.
type HeapSorter[T any] struct{}

var _ Sorter[int] = HeapSorter[int]{}

func NewHeapSorter[T any]() HeapSorter[T] {
	return HeapSorter[T]{}
}

func (HeapSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(HeapSort, list, cmp, heapSort[T])
}

func heapSort[T any](list []T, cmp compare.Func[T]) {
	n := len(list)

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(list, i, n, cmp)
	}

	for i := n - 1; i > 0; i-- {
		list[0], list[i] = list[i], list[0]
		siftDown(list, 0, i, cmp)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root,
// treating list[:hi] as the heap.
func siftDown[T any](list []T, root, hi int, cmp compare.Func[T]) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}

		if child+1 < hi && cmp(list[child], list[child+1]) < 0 {
			child++
		}

		if cmp(list[root], list[child]) >= 0 {
			return
		}

		list[root], list[child] = list[child], list[root]
		root = child
	}
}
