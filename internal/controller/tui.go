package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mouse-blink/kata/internal/domain"
	m "github.com/mouse-blink/kata/internal/model"
)

// TUI implements UI using Bubble Tea for interactive browsing. Outside of
// browse mode it falls back to plain text output.
type TUI struct {
	output   io.Writer
	registry domain.Registry
}

// NewTUI creates a new TUI backed by the given registry.
func NewTUI(output io.Writer, registry domain.Registry) *TUI {
	return &TUI{output: output, registry: registry}
}

// Start initializes the UI. In browse mode it runs the interactive snippet
// browser until the user quits.
func (t *TUI) Start(options ...StartOption) error {
	var cfg StartConfig

	for _, option := range options {
		option(&cfg)
	}

	if cfg.mode != ModeBrowse {
		return nil
	}

	program := tea.NewProgram(newBrowseModel(t.registry), tea.WithOutput(t.output))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse mode: %w", err)
	}

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {

}

// DisplayList prints the registered snippets.
func (t *TUI) DisplayList(snippets []m.Snippet) error {
	for i, snippet := range snippets {
		_, _ = fmt.Fprintf(t.output, "%3d  %s (%s)\n", i+1, snippet.Name, snippet.Topic)
	}

	return nil
}

// DisplayLines prints log lines.
func (t *TUI) DisplayLines(lines []m.LogLine) error {
	for _, line := range lines {
		_, _ = fmt.Fprintf(t.output, "  %s\n", line.Text)
	}

	return nil
}

// DisplayRun prints the run's lines and the aggregate counts.
func (t *TUI) DisplayRun(result m.RunResult) error {
	current := ""

	for _, line := range result.Lines {
		if line.Snippet != current {
			current = line.Snippet
			_, _ = fmt.Fprintf(t.output, "=== %s ===\n", current)
		}

		_, _ = fmt.Fprintf(t.output, "  %s\n", line.Text)
	}

	_, _ = fmt.Fprintf(t.output, "Ran %d snippet(s), %d failed\n", result.Ran, result.Failures)

	return nil
}
