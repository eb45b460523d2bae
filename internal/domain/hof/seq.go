// Package hof provides generic higher-order operations over ordered
// sequences: map, filter, reduce, flatten and a stable sort.
package hof

// Map applies f to every element independently. Length and order are
// preserved.
func Map[T, U any](seq []T, f func(T) U) []U {
	out := make([]U, 0, len(seq))

	for _, v := range seq {
		out = append(out, f(v))
	}

	return out
}

// Filter keeps the elements for which pred is true, preserving their
// relative order.
func Filter[T any](seq []T, pred func(T) bool) []T {
	out := make([]T, 0, len(seq))

	for _, v := range seq {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// Reduce left-folds seq into an accumulator, applying combine strictly in
// sequence order. No associativity is assumed.
func Reduce[T, R any](seq []T, initial R, combine func(R, T) R) R {
	acc := initial

	for _, v := range seq {
		acc = combine(acc, v)
	}

	return acc
}

// Flatten concatenates one level of nesting, outer order first, inner order
// within each group.
func Flatten[T any](seq [][]T) []T {
	size := 0
	for _, inner := range seq {
		size += len(inner)
	}

	out := make([]T, 0, size)

	for _, inner := range seq {
		out = append(out, inner...)
	}

	return out
}
