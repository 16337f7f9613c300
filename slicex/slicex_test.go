package slicex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/byteutils/slicex"
)

func TestDedup_keeps_first_occurrence(t *testing.T) {
	t.Parallel()

	numbers := []int{1, 2, 3, 2, 4, 1, 5}
	slicex.Dedup(&numbers)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers)
}

func TestDedup_empty(t *testing.T) {
	t.Parallel()

	var empty []string
	slicex.Dedup(&empty)

	assert.Empty(t, empty)
}

func TestRetainIf(t *testing.T) {
	t.Parallel()

	words := []string{"a", "bb", "ccc", "dd"}
	slicex.RetainIf(&words, func(s string) bool { return len(s) == 2 })

	assert.Equal(t, []string{"bb", "dd"}, words)
}

func TestReverseInPlace(t *testing.T) {
	t.Parallel()

	in := []byte{1, 2, 3}
	slicex.ReverseInPlace(in)

	assert.Equal(t, []byte{3, 2, 1}, in)
}

func TestSplitAt(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3, 4}

	left, right, err := slicex.SplitAt(in, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, left)
	assert.Equal(t, []int{2, 3, 4}, right)

	// Results are copies.
	left[0] = 9
	assert.Equal(t, 1, in[0])
}

func TestSplitAt_bounds(t *testing.T) {
	t.Parallel()

	in := []int{1, 2}

	left, right, err := slicex.SplitAt(in, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, left)
	assert.Empty(t, right)

	_, _, err = slicex.SplitAt(in, 3)
	assert.ErrorIs(t, err, slicex.ErrIndexOutOfRange)

	_, _, err = slicex.SplitAt(in, -1)
	assert.ErrorIs(t, err, slicex.ErrIndexOutOfRange)
}

func TestUnique_leaves_input_untouched(t *testing.T) {
	t.Parallel()

	in := []string{"b", "a", "b", "c", "a"}
	got := slicex.Unique(in)

	assert.Equal(t, []string{"b", "a", "c"}, got)
	assert.Equal(t, []string{"b", "a", "b", "c", "a"}, in)
}
