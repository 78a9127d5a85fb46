package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// CombSorter implements comb sort: bubble sort generalized over a shrinking
// gap so small elements near the end ("turtles") move left quickly. The gap
// shrinks by the conventional 1.3 factor each pass and the sort terminates
// once the gap is 1 and a full pass makes no swaps. Not stable.
type CombSorter[T any] struct{}

var _ Sorter[int] = CombSorter[int]{}

func NewCombSorter[T any]() CombSorter[T] {
	return CombSorter[T]{}
}

func (CombSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(CombSort, list, cmp, combSort[T])
}

func combSort[T any](list []T, cmp compare.Func[T]) {
	gap := len(list)
	swapped := true

	for gap > 1 || swapped {
		gap = nextCombGap(gap)
		swapped = false

		for i := 0; i+gap < len(list); i++ {
			if cmp(list[i+gap], list[i]) < 0 {
				list[i], list[i+gap] = list[i+gap], list[i]
				swapped = true
			}
		}
	}
}

// nextCombGap shrinks the gap by the 1.3 shrink factor using integer
// arithmetic (gap*10/13), flooring at 1. Starting from any positive gap the
// sequence strictly decreases until it reaches 1, which guarantees the
// sort's outer loop terminates.
func nextCombGap(gap int) int {
	gap = gap * 10 / 13
	if gap < 1 {
		return 1
	}

	return gap
}
