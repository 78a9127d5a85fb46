package sorting

import (
	"fmt"

	"github.com/jaredjstewart/cp-elements/objects"
)

// CreateSorter returns a new Sorter implementing the algorithm identified
// by sortType. The zero value of SortType is treated as UnknownSort, and
// unrecognized tags (UnknownSort included) fail with ErrUnsupportedSortType
// naming the offending tag.
//
//nolint:ireturn
func CreateSorter[T any](sortType SortType) (Sorter[T], error) {
	switch objects.DefaultIfZero(sortType, UnknownSort) {
	case BubbleSort:
		return NewBubbleSorter[T](), nil
	case CombSort:
		return NewCombSorter[T](), nil
	case HeapSort:
		return NewHeapSorter[T](), nil
	case InsertionSort:
		return NewInsertionSorter[T](), nil
	case MergeSort:
		return NewMergeSorter[T](), nil
	case QuickSort:
		return NewQuickSorter[T](), nil
	case SelectionSort:
		return NewSelectionSorter[T](), nil
	case ShellSort:
		return NewShellSorter[T](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSortType, sortType)
	}
}
