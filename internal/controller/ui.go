// Package controller provides output adapters for displaying snippet runs.
package controller

import (
	m "github.com/mouse-blink/kata/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeReport StartMode = iota
	ModeBrowse
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithReportMode sets the UI to plain report output.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithBrowseMode sets the UI to interactive snippet browsing.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// UI defines the interface for displaying snippets and run results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayList(snippets []m.Snippet) error
	DisplayLines(lines []m.LogLine) error
	DisplayRun(result m.RunResult) error
}
