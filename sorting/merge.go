package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// MergeSorter implements top-down merge sort: split in half, sort each
// half, merge the sorted halves by repeatedly taking the smaller head.
// O(n log n) regardless of input order, at the cost of an O(n) auxiliary
// buffer for merging. Stable.
type MergeSorter[T any] struct{}

var _ Sorter[int] = MergeSorter[int]{}

func NewMergeSorter[T any]() MergeSorter[T] {
	return MergeSorter[T]{}
}

func (MergeSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(MergeSort, list, cmp, mergeSort[T])
}

func mergeSort[T any](list []T, cmp compare.Func[T]) {
	buf := make([]T, len(list))
	mergeSortRange(list, buf, 0, len(list), cmp)
}

func mergeSortRange[T any](list, buf []T, lo, hi int, cmp compare.Func[T]) {
	if hi-lo < 2 {
		return
	}

	mid := int(uint(lo+hi) >> 1)

	mergeSortRange(list, buf, lo, mid, cmp)
	mergeSortRange(list, buf, mid, hi, cmp)
	merge(list, buf, lo, mid, hi, cmp)
}

// merge combines the sorted ranges [lo, mid) and [mid, hi) through buf.
// The right head is taken only when strictly smaller, keeping the merge
// stable.
func merge[T any](list, buf []T, lo, mid, hi int, cmp compare.Func[T]) {
	copy(buf[lo:hi], list[lo:hi])

	left, right := lo, mid

	for k := lo; k < hi; k++ {
		switch {
		case left >= mid:
			list[k] = buf[right]
			right++
		case right >= hi:
			list[k] = buf[left]
			left++
		case cmp(buf[right], buf[left]) < 0:
			list[k] = buf[right]
			right++
		default:
			list[k] = buf[left]
			left++
		}
	}
}
