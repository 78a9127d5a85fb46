package sorting

import "github.com/jaredjstewart/cp-elements/compare"

// ShellSorter implements shell sort: gapped insertion sort over a
// decreasing gap sequence, finishing with a plain insertion pass at gap 1.
// The early large-gap passes move far-displaced elements cheaply, so the
// final pass runs near its O(n) best case. Not stable.
type ShellSorter[T any] struct{}

var _ Sorter[int] = ShellSorter[int]{}

func NewShellSorter[T any]() ShellSorter[T] {
	return ShellSorter[T]{}
}

// Gap returns the starting stride for a sequence of n elements: n/3,
// floored at 1. Subsequent passes divide the gap by 3 until it reaches 1.
func (ShellSorter[T]) Gap(n int) int {
	if gap := n / 3; gap > 1 {
		return gap
	}

	return 1
}

func (s ShellSorter[T]) Sort(list []T, cmp compare.Func[T]) ([]T, error) {
	return run(ShellSort, list, cmp, s.sort)
}

func (s ShellSorter[T]) sort(list []T, cmp compare.Func[T]) {
	gap := s.Gap(len(list))

	for {
		insertionSortGap(list, gap, cmp)

		if gap == 1 {
			return
		}

		gap = max(gap/3, 1)
	}
}
