package hof

// Pipe chains the type-preserving stages over a sequence. Stages are eager:
// each returns a fresh Pipe and never mutates its input. Type-changing
// stages (Map to a new element type, Reduce) stay free functions because Go
// methods cannot introduce type parameters.
type Pipe[T any] struct {
	seq []T
}

// From starts a pipe over seq.
func From[T any](seq []T) Pipe[T] {
	return Pipe[T]{seq: seq}
}

// Filter keeps elements matching pred, order preserved.
func (p Pipe[T]) Filter(pred func(T) bool) Pipe[T] {
	return Pipe[T]{seq: Filter(p.seq, pred)}
}

// Transform applies f to every element, keeping the element type.
func (p Pipe[T]) Transform(f func(T) T) Pipe[T] {
	return Pipe[T]{seq: Map(p.seq, f)}
}

// SortStable orders the elements by less, stable.
func (p Pipe[T]) SortStable(less func(T, T) bool) Pipe[T] {
	return Pipe[T]{seq: SortStable(p.seq, less)}
}

// Collect returns the pipe's elements.
func (p Pipe[T]) Collect() []T {
	out := make([]T, len(p.seq))
	copy(out, p.seq)

	return out
}
