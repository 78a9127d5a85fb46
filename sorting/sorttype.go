package sorting

import "strings"

// SortType identifies one of the supported sorting algorithms. It is a
// pure selection tag and carries no runtime state.
type SortType string

const (
	BubbleSort    SortType = "bubble"
	CombSort      SortType = "comb"
	HeapSort      SortType = "heap"
	InsertionSort SortType = "insertion"
	MergeSort     SortType = "merge"
	QuickSort     SortType = "quick"
	SelectionSort SortType = "selection"
	ShellSort     SortType = "shell"

	// UnknownSort is the sentinel for an unrecognized algorithm; the factory
	// rejects it with ErrUnsupportedSortType.
	UnknownSort SortType = "unknown"
)

// SortTypes returns every supported algorithm tag, excluding UnknownSort.
func SortTypes() []SortType {
	return []SortType{
		BubbleSort,
		CombSort,
		HeapSort,
		InsertionSort,
		MergeSort,
		QuickSort,
		SelectionSort,
		ShellSort,
	}
}

func (t SortType) String() string {
	return string(t)
}

// ParseSortType maps a case-insensitive algorithm name to its SortType.
// Names outside the supported set map to UnknownSort.
func ParseSortType(name string) SortType {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, t := range SortTypes() {
		if name == string(t) {
			return t
		}
	}

	return UnknownSort
}
