package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/kata/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayList prints the registered snippets as a table.
func (s *SimpleUI) DisplayList(snippets []m.Snippet) error {
	if len(snippets) == 0 {
		s.printf("No snippets registered\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Snippet", "Topic"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, snippet := range snippets {
		table.Append([]string{fmt.Sprintf("%d", i+1), snippet.Name, string(snippet.Topic)})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(snippets)), ""})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayLines prints log lines, one per row, error lines highlighted.
func (s *SimpleUI) DisplayLines(lines []m.LogLine) error {
	for _, line := range lines {
		text := line.Text
		if line.IsError {
			text = failStyle.Render(text)
		}

		s.printf("  %s\n", text)
	}

	return nil
}

// DisplayRun prints every snippet's lines grouped under its name, then a
// summary table with the aggregate failure count.
func (s *SimpleUI) DisplayRun(result m.RunResult) error {
	type group struct {
		name   string
		lines  int
		failed bool
	}

	var groups []group

	for _, line := range result.Lines {
		if len(groups) == 0 || groups[len(groups)-1].name != line.Snippet {
			groups = append(groups, group{name: line.Snippet})
			s.printf("%s\n", headerStyle.Render("=== "+line.Snippet+" ==="))
		}

		last := &groups[len(groups)-1]
		last.lines++

		text := line.Text
		if line.IsError {
			last.failed = true
			text = failStyle.Render(text)
		}

		s.printf("  %s\n", text)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Snippet", "Lines", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, g := range groups {
		status := okStyle.Render("ok")
		if g.failed {
			status = failStyle.Render("FAIL")
		}

		table.Append([]string{g.name, fmt.Sprintf("%d", g.lines), status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Ran %d", result.Ran),
		"",
		fmt.Sprintf("%d failed", result.Failures),
	})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
