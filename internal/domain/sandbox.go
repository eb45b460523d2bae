package domain

import (
	"fmt"

	m "github.com/mouse-blink/kata/internal/model"
)

// Cell is a mutable shared cell. A closure that captures the cell itself
// observes later external mutation; a closure that copies the value at
// creation time does not.
type Cell[T any] struct {
	value T
}

// NewCell creates a cell holding the given value.
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the current value.
func (c *Cell[T]) Set(value T) {
	c.value = value
}

// binding is one named value owned by a sandbox.
type binding struct {
	name string
	mode m.CaptureMode
	cell *Cell[any]
}

// Sandbox evaluates closures against a named set of captured bindings. Each
// binding is captured by reference or by value snapshot; the mode is fixed
// at bind time.
type Sandbox struct {
	bindings map[string]*binding
}

// NewSandbox creates an empty sandbox.
func NewSandbox() *Sandbox {
	return &Sandbox{bindings: make(map[string]*binding)}
}

// Bind adds a named binding with the given capture mode.
func (s *Sandbox) Bind(name string, value any, mode m.CaptureMode) error {
	if _, ok := s.bindings[name]; ok {
		return &m.DuplicateNameError{Name: name}
	}

	if mode != m.CaptureByReference && mode != m.CaptureByValue {
		return fmt.Errorf("binding %s: unsupported capture mode: %v", name, mode)
	}

	s.bindings[name] = &binding{name: name, mode: mode, cell: NewCell(value)}

	return nil
}

// Set mutates a binding externally, after closures may already have
// captured it.
func (s *Sandbox) Set(name string, value any) error {
	b, ok := s.bindings[name]
	if !ok {
		return fmt.Errorf("no binding named %s", name)
	}

	b.cell.Set(value)

	return nil
}

// Mode returns the capture mode a binding was created with.
func (s *Sandbox) Mode(name string) (m.CaptureMode, error) {
	b, ok := s.bindings[name]
	if !ok {
		return "", fmt.Errorf("no binding named %s", name)
	}

	return b.mode, nil
}

// Getter returns a closure observing the binding. For a by-reference
// binding the closure closes over the shared cell. For a by-value binding
// the value is copied here, at closure-creation time, and the closure reads
// the copy forever after.
func (s *Sandbox) Getter(name string) (func() any, error) {
	b, ok := s.bindings[name]
	if !ok {
		return nil, fmt.Errorf("no binding named %s", name)
	}

	if b.mode == m.CaptureByValue {
		snapshot := b.cell.Get()

		return func() any { return snapshot }, nil
	}

	cell := b.cell

	return func() any { return cell.Get() }, nil
}

// MakeCounter returns a closure that advances and returns its own captured
// total on every call. Counters never share state: each call to MakeCounter
// captures a fresh cell.
func MakeCounter(initial, step int) func() int {
	total := initial

	return func() int {
		total += step
		return total
	}
}

// Handle is an explicit-lifetime owner handle. Release models the owner
// being dropped by all other holders; liveness is checked, never inferred
// from the garbage collector.
type Handle[T any] struct {
	name     string
	value    T
	released bool
}

// NewHandle creates a live handle owning the given value.
func NewHandle[T any](name string, value T) *Handle[T] {
	return &Handle[T]{name: name, value: value}
}

// Name returns the owner's name.
func (h *Handle[T]) Name() string {
	return h.name
}

// Released reports whether the owner has been released.
func (h *Handle[T]) Released() bool {
	return h.released
}

// Release drops the owner. Safe to call more than once.
func (h *Handle[T]) Release() {
	var zero T

	h.value = zero
	h.released = true
}

// WeakNotifier returns a closure holding a weak-style guarded reference to
// the owner. Invoked after release it is a no-op: the guard fails the
// dereference and the closure returns without calling fn.
func WeakNotifier[T any](h *Handle[T], fn func(T)) func() {
	return func() {
		if h.released {
			return
		}

		fn(h.value)
	}
}

// UnownedNotifier returns a closure trusting the owner to outlive it.
// Invoked after release it fails with UseAfterReleaseError instead of
// silently skipping — the failure is the point of the pattern.
func UnownedNotifier[T any](h *Handle[T], fn func(T)) func() error {
	return func() error {
		if h.released {
			return &m.UseAfterReleaseError{Owner: h.name}
		}

		fn(h.value)

		return nil
	}
}
