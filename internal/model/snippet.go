// Package model defines the data structures for the snippet runner.
package model

// Topic represents the lesson a snippet belongs to.
type Topic string

const (
	// TopicClosures covers named and anonymous callables.
	TopicClosures Topic = "closures"
	// TopicCapture covers by-reference and by-value capture.
	TopicCapture Topic = "capture"
	// TopicLifetime covers weak and unowned guard patterns.
	TopicLifetime Topic = "lifetime"
	// TopicSequences covers map/filter/reduce/flatten/sort.
	TopicSequences Topic = "sequences"
)

// Body is a snippet's executable unit. It takes no arguments and returns the
// lines it printed, in order. A non-nil error marks the snippet as failed.
type Body func() ([]string, error)

// Snippet is a named executable unit. Immutable once registered.
type Snippet struct {
	Name  string
	Topic Topic
	Body  Body
}

// LogLine is one line of snippet output within a run.
type LogLine struct {
	Snippet string // name of the snippet that produced the line
	Text    string
	Seq     int  // run-global position, starting at 0
	IsError bool // true for the recorded failure of a snippet
}

// RunResult holds everything a run produced.
type RunResult struct {
	Lines    []LogLine
	Ran      int // snippets executed
	Failures int // snippets that returned an error or panicked
}

// Failed reports whether any snippet in the run failed.
func (r RunResult) Failed() bool {
	return r.Failures > 0
}
