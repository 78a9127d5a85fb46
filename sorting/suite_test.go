package sorting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaredjstewart/cp-elements/compare"
	"github.com/jaredjstewart/cp-elements/errors"
)

// record pairs a sort key with the element's original position, making
// stability observable.
type record struct {
	key int
	pos int
}

func byKey(a, b record) int {
	return a.key - b.key
}

// newSorter constructs a sorter of the given element type via the factory,
// so every suite run also exercises the factory dispatch path.
func newSorter[T any](t *testing.T, tag SortType) Sorter[T] {
	t.Helper()

	sorter, err := CreateSorter[T](tag)
	require.NoError(t, err)

	return sorter
}

// shuffledInts returns n pseudo-random ints from a fixed seed, with enough
// duplicates to exercise equal-element handling.
func shuffledInts(n int) []int {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec

	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(n / 4)
	}

	return out
}

// runSorterSuite exercises the shared Sorter contract against one
// algorithm: ordering, permutation preservation, idempotence, trivial
// inputs, nil rejection, comparator handling, natural ordering, and (when
// promised) stability.
func runSorterSuite(t *testing.T, tag SortType, stable bool) {
	t.Helper()

	t.Run("sorts shuffled integers", func(t *testing.T) {
		t.Parallel()

		input := shuffledInts(200)
		want := slices.Clone(input)
		slices.Sort(want)

		got, err := newSorter[int](t, tag).Sort(input, compare.Natural[int]())
		require.NoError(t, err)

		// Equal order and equal multiset in one comparison against the
		// reference sort.
		assert.Equal(t, want, got)
	})

	t.Run("mutates in place and returns the same slice", func(t *testing.T) {
		t.Parallel()

		input := []int{3, 1, 2}

		got, err := newSorter[int](t, tag).Sort(input, compare.Natural[int]())
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2, 3}, input)
		assert.Same(t, &input[0], &got[0])
	})

	t.Run("idempotent on sorted input", func(t *testing.T) {
		t.Parallel()

		sorter := newSorter[int](t, tag)

		first, err := sorter.Sort(shuffledInts(100), compare.Natural[int]())
		require.NoError(t, err)

		want := slices.Clone(first)

		second, err := sorter.Sort(first, compare.Natural[int]())
		require.NoError(t, err)
		assert.Equal(t, want, second)
	})

	t.Run("reverse sorted input", func(t *testing.T) {
		t.Parallel()

		input := make([]int, 64)
		for i := range input {
			input[i] = len(input) - i
		}

		got, err := newSorter[int](t, tag).Sort(input, compare.Natural[int]())
		require.NoError(t, err)
		assert.True(t, slices.IsSorted(got))
	})

	t.Run("empty slice unchanged", func(t *testing.T) {
		t.Parallel()

		got, err := newSorter[int](t, tag).Sort([]int{}, compare.Natural[int]())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("single element unchanged", func(t *testing.T) {
		t.Parallel()

		got, err := newSorter[int](t, tag).Sort([]int{7}, compare.Natural[int]())
		require.NoError(t, err)
		assert.Equal(t, []int{7}, got)
	})

	t.Run("nil slice rejected", func(t *testing.T) {
		t.Parallel()

		_, err := newSorter[int](t, tag).Sort(nil, compare.Natural[int]())
		require.ErrorIs(t, err, ErrNilSequence)
		assert.ErrorIs(t, err, errors.ErrIllegalArgument)
	})

	t.Run("custom comparator", func(t *testing.T) {
		t.Parallel()

		descending := compare.Reverse(compare.Natural[int]())

		got, err := newSorter[int](t, tag).Sort([]int{2, 5, 1, 4}, descending)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 4, 2, 1}, got)
	})

	t.Run("natural ordering via Sortable elements", func(t *testing.T) {
		t.Parallel()

		input := []compare.Int{5, 3, 1, 4, 2}

		got, err := newSorter[compare.Int](t, tag).Sort(input, nil)
		require.NoError(t, err)
		assert.Equal(t, []compare.Int{1, 2, 3, 4, 5}, got)
	})

	t.Run("elements without an order are rejected", func(t *testing.T) {
		t.Parallel()

		type unordered struct{ v int }

		_, err := newSorter[unordered](t, tag).Sort([]unordered{{2}, {1}}, nil)
		require.ErrorIs(t, err, errors.ErrWrongType)
	})

	if stable {
		t.Run("equal elements keep their input order", func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(7)) //nolint:gosec

			input := make([]record, 150)
			for i := range input {
				input[i] = record{key: rng.Intn(10), pos: i}
			}

			got, err := newSorter[record](t, tag).Sort(input, byKey)
			require.NoError(t, err)

			for i := 1; i < len(got); i++ {
				prev, cur := got[i-1], got[i]

				require.LessOrEqual(t, prev.key, cur.key)

				if prev.key == cur.key {
					assert.Less(t, prev.pos, cur.pos,
						"records with key %d reordered", cur.key)
				}
			}
		})
	}
}
