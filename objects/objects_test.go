package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNilish(t *testing.T) {
	t.Parallel()

	var nilPtr *int

	var nilMap map[string]int

	var nilSlice []int

	var nilChan chan int

	var nilFunc func()

	tests := []struct {
		name     string
		val      any
		expected bool
	}{
		{
			name:     "literal nil",
			val:      nil,
			expected: true,
		},
		{
			name:     "nil pointer",
			val:      nilPtr,
			expected: true,
		},
		{
			name:     "nil map",
			val:      nilMap,
			expected: true,
		},
		{
			name:     "nil slice",
			val:      nilSlice,
			expected: true,
		},
		{
			name:     "nil chan",
			val:      nilChan,
			expected: true,
		},
		{
			name:     "nil func",
			val:      nilFunc,
			expected: true,
		},
		{
			name:     "zero int is not nilish",
			val:      0,
			expected: false,
		},
		{
			name:     "empty string is not nilish",
			val:      "",
			expected: false,
		},
		{
			name:     "non-nil pointer",
			val:      new(int),
			expected: false,
		},
		{
			name:     "empty but allocated slice",
			val:      []int{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsNilish(tt.val))
		})
	}
}

func TestDefaultIfNil(t *testing.T) {
	t.Parallel()

	fallback := new(int)

	var nilPtr *int

	assert.Same(t, fallback, DefaultIfNil(nilPtr, fallback))

	value := new(int)
	assert.Same(t, value, DefaultIfNil(value, fallback))
}

func TestDefaultIfZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, DefaultIfZero(0, 5))
	assert.Equal(t, 3, DefaultIfZero(3, 5))
	assert.Equal(t, "fallback", DefaultIfZero("", "fallback"))
	assert.Equal(t, "value", DefaultIfZero("value", "fallback"))

	type pair struct{ a, b int }

	assert.Equal(t, pair{1, 2}, DefaultIfZero(pair{}, pair{1, 2}))
	assert.Equal(t, pair{3, 0}, DefaultIfZero(pair{3, 0}, pair{1, 2}))
}

func TestFirstNonNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int

	value := new(int)

	got, ok := FirstNonNil(nilPtr, value, new(int)).Get()
	require.True(t, ok)
	assert.Same(t, value, got)

	assert.True(t, FirstNonNil(nilPtr, nilPtr).Empty())
	assert.True(t, FirstNonNil[*int]().Empty())
}
