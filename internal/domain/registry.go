// Package domain contains the snippet registry, the capture sandbox and the
// core run loop.
package domain

import (
	"fmt"

	m "github.com/mouse-blink/kata/internal/model"
)

// Registry defines the interface for registering and running snippets.
type Registry interface {
	Register(name string, topic m.Topic, body m.Body) error
	Names() []string
	Snippets() []m.Snippet
	Len() int
	RunAll() m.RunResult
	Run(names ...string) (m.RunResult, error)
}

// registry holds snippets in registration order.
type registry struct {
	snippets []m.Snippet
	index    map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() Registry {
	return &registry{index: make(map[string]int)}
}

// Register adds a snippet under a unique name.
func (r *registry) Register(name string, topic m.Topic, body m.Body) error {
	if _, ok := r.index[name]; ok {
		return &m.DuplicateNameError{Name: name}
	}

	if body == nil {
		return fmt.Errorf("snippet %s: nil body", name)
	}

	r.index[name] = len(r.snippets)
	r.snippets = append(r.snippets, m.Snippet{Name: name, Topic: topic, Body: body})

	return nil
}

// Names returns the registered names in registration order.
func (r *registry) Names() []string {
	names := make([]string, 0, len(r.snippets))
	for _, s := range r.snippets {
		names = append(names, s.Name)
	}

	return names
}

// Snippets returns the registered snippets in registration order.
func (r *registry) Snippets() []m.Snippet {
	out := make([]m.Snippet, len(r.snippets))
	copy(out, r.snippets)

	return out
}

// Len returns the number of registered snippets.
func (r *registry) Len() int {
	return len(r.snippets)
}

// RunAll runs every snippet in registration order. A failing snippet is
// recorded as one error line and the run continues with the next snippet.
func (r *registry) RunAll() m.RunResult {
	return r.runSnippets(r.snippets)
}

// Run runs only the named snippets, in registration order regardless of the
// argument order. An unknown name fails the whole call before anything runs.
func (r *registry) Run(names ...string) (m.RunResult, error) {
	if len(names) == 0 {
		return r.RunAll(), nil
	}

	wanted := make(map[string]bool, len(names))

	for _, name := range names {
		if _, ok := r.index[name]; !ok {
			return m.RunResult{}, &m.UnknownSnippetError{Name: name}
		}

		wanted[name] = true
	}

	selected := make([]m.Snippet, 0, len(wanted))

	for _, s := range r.snippets {
		if wanted[s.Name] {
			selected = append(selected, s)
		}
	}

	return r.runSnippets(selected), nil
}

func (r *registry) runSnippets(snippets []m.Snippet) m.RunResult {
	var result m.RunResult

	seq := 0

	for _, snippet := range snippets {
		lines, err := invoke(snippet.Body)

		for _, text := range lines {
			result.Lines = append(result.Lines, m.LogLine{
				Snippet: snippet.Name,
				Text:    text,
				Seq:     seq,
			})
			seq++
		}

		if err != nil {
			result.Lines = append(result.Lines, m.LogLine{
				Snippet: snippet.Name,
				Text:    fmt.Sprintf("error: %v", err),
				Seq:     seq,
				IsError: true,
			})
			seq++
			result.Failures++
		}

		result.Ran++
	}

	return result
}

// invoke runs a body, converting a panic into an error so one snippet cannot
// abort the run.
func invoke(body m.Body) (lines []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			lines = nil
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	return body()
}
