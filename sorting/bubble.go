package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// BubbleSorter implements bubble sort: repeated adjacent-pair passes,
// swapping out-of-order neighbors until a pass completes with no swaps.
// O(n²) worst and average case, O(n) on already sorted input thanks to the
// early exit. Stable.
type BubbleSorter[T any] struct{}

var _ Sorter[int] = BubbleSorter[int]{}

func NewBubbleSorter[T any]() BubbleSorter[T] {
	return BubbleSorter[T]{}
}

func (BubbleSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(BubbleSort, list, cmp, bubbleSort[T])
}

func bubbleSort[T any](list []T, cmp compare.Func[T]) {
	for n := len(list); n > 1; n-- {
		swapped := false

		for i := 1; i < n; i++ {
			if cmp(list[i], list[i-1]) < 0 {
				list[i-1], list[i] = list[i], list[i-1]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}
