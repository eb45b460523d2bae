package hof

import "sort"

// SortStable returns a sorted copy of seq ordered by the caller-supplied
// total-order predicate. Stable: elements comparing equal keep their input
// order. The input slice is left intact.
func SortStable[T any](seq []T, less func(T, T) bool) []T {
	out := make([]T, len(seq))
	copy(out, seq)

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	return out
}
