package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// QuickSorter implements quick sort with a middle-element pivot and Hoare
// partitioning. O(n log n) on average; the middle pivot avoids the
// quadratic degenerate case on already sorted input that a first- or
// last-element pivot would hit. In-place, not stable.
type QuickSorter[T any] struct{}

var _ Sorter[int] = QuickSorter[int]{}

func NewQuickSorter[T any]() QuickSorter[T] {
	return QuickSorter[T]{}
}

func (QuickSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(QuickSort, list, cmp, quickSort[T])
}

func quickSort[T any](list []T, cmp compare.Func[T]) {
	quickSortRange(list, 0, len(list)-1, cmp)
}

func quickSortRange[T any](list []T, lo, hi int, cmp compare.Func[T]) {
	if lo >= hi {
		return
	}

	p := partition(list, lo, hi, cmp)

	quickSortRange(list, lo, p, cmp)
	quickSortRange(list, p+1, hi, cmp)
}

// partition rearranges list[lo..hi] around the middle element so that
// everything in [lo, p] compares <= everything in (p, hi], returning p.
func partition[T any](list []T, lo, hi int, cmp compare.Func[T]) int {
	pivot := list[int(uint(lo+hi)>>1)]

	i, j := lo, hi

	for {
		for cmp(list[i], pivot) < 0 {
			i++
		}

		for cmp(pivot, list[j]) < 0 {
			j--
		}

		if i >= j {
			return j
		}

		list[i], list[j] = list[j], list[i]
		i++
		j--
	}
}
