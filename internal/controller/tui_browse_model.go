package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/kata/internal/domain"
	m "github.com/mouse-blink/kata/internal/model"
)

const outputPaneLines = 12

// snippetItem adapts a snippet for bubbles' list.
type snippetItem struct {
	name  string
	topic string
}

func (i snippetItem) FilterValue() string { return i.name }

// snippetDelegate renders one snippet per line.
type snippetDelegate struct{}

func (d snippetDelegate) Height() int  { return 1 }
func (d snippetDelegate) Spacing() int { return 0 }
func (d snippetDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d snippetDelegate) Render(w io.Writer, mdl list.Model, index int, item list.Item) {
	snippet, ok := item.(snippetItem)
	if !ok {
		return
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	topicStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if index == mdl.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	line := fmt.Sprintf("%s  %s",
		nameStyle.Render(snippet.name),
		topicStyle.Render(snippet.topic),
	)
	_, _ = fmt.Fprint(w, line)
}

// browseModel is the interactive snippet browser: a list of snippets on top,
// the last run's output below it.
type browseModel struct {
	list     list.Model
	run      runnerFunc
	output   []string
	status   string
	quitting bool
}

func newBrowseModel(registry domain.Registry) browseModel {
	snippets := registry.Snippets()

	items := make([]list.Item, 0, len(snippets))
	for _, snippet := range snippets {
		items = append(items, snippetItem{name: snippet.Name, topic: string(snippet.Topic)})
	}

	l := list.New(items, snippetDelegate{}, 80, len(items)+4)
	l.Title = "snippets  (enter: run, a: run all, q: quit)"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return browseModel{
		list: l,
		run:  registry.Run,
	}
}

// Init implements tea.Model.
func (mdl browseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (mdl browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mdl.list.SetWidth(msg.Width)
		return mdl, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			mdl.quitting = true
			return mdl, tea.Quit

		case "enter":
			item, ok := mdl.list.SelectedItem().(snippetItem)
			if !ok {
				return mdl, nil
			}

			run := runSnippetsCmd(mdl.run, item.name, item.name)

			return mdl, func() tea.Msg { return run() }

		case "a":
			run := runSnippetsCmd(mdl.run, "all snippets")

			return mdl, func() tea.Msg { return run() }
		}

	case snippetRanMsg:
		mdl.output = renderResult(msg.result)
		mdl.status = fmt.Sprintf("%s: %d line(s), %d failed",
			msg.title, len(msg.result.Lines), msg.result.Failures)

		return mdl, nil
	}

	var cmd tea.Cmd
	mdl.list, cmd = mdl.list.Update(msg)

	return mdl, cmd
}

// View implements tea.Model.
func (mdl browseModel) View() string {
	if mdl.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(mdl.list.View())
	b.WriteString("\n")

	if mdl.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		b.WriteString(statusStyle.Render(mdl.status))
		b.WriteString("\n")
	}

	output := mdl.output
	if len(output) > outputPaneLines {
		output = output[len(output)-outputPaneLines:]
	}

	for _, line := range output {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderResult turns a run result into display lines, error lines styled.
func renderResult(result m.RunResult) []string {
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	lines := make([]string, 0, len(result.Lines))

	for _, line := range result.Lines {
		text := fmt.Sprintf("  [%s] %s", line.Snippet, line.Text)
		if line.IsError {
			text = errStyle.Render(text)
		}

		lines = append(lines, text)
	}

	return lines
}
