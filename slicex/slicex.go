package slicex

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange indicates a split index outside [0, len].
var ErrIndexOutOfRange = errors.New("index out of range")

// Dedup removes duplicate elements in place, keeping the
// first occurrence of each and preserving order.
func Dedup[T comparable](s *[]T) {
	seen := make(map[T]struct{}, len(*s))

	RetainIf(s, func(v T) bool {
		if _, ok := seen[v]; ok {
			return false
		}

		seen[v] = struct{}{}

		return true
	})
}

// RetainIf keeps only the elements for which keep returns
// true, in place and in order.
func RetainIf[T any](s *[]T, keep func(T) bool) {
	*s = slices.DeleteFunc(*s, func(v T) bool {
		return !keep(v)
	})
}

// ReverseInPlace reverses s.
func ReverseInPlace[T any](s []T) {
	slices.Reverse(s)
}

// SplitAt returns copies of s[:i] and s[i:].
func SplitAt[T any](s []T, i int) ([]T, []T, error) {
	if i < 0 || i > len(s) {
		return nil, nil, fmt.Errorf(
			"splitting at %d of %d: %w",
			i, len(s), ErrIndexOutOfRange,
		)
	}

	return slices.Clone(s[:i]), slices.Clone(s[i:]), nil
}

// Unique returns a new slice holding the first occurrence
// of each element of s, in order.
func Unique[T comparable](s []T) []T {
	out := slices.Clone(s)
	Dedup(&out)

	return out
}
