package controller

import (
	m "github.com/mouse-blink/kata/internal/model"
)

// snippetRanMsg carries the result of running one or more snippets inside
// the browse model.
type snippetRanMsg struct {
	title  string
	result m.RunResult
}

// runSnippetsCmd runs the named snippets (all of them when names is empty)
// and delivers the result as a message.
func runSnippetsCmd(registry runnerFunc, title string, names ...string) func() snippetRanMsg {
	return func() snippetRanMsg {
		result, err := registry(names...)
		if err != nil {
			result.Lines = append(result.Lines, m.LogLine{
				Snippet: title,
				Text:    err.Error(),
				IsError: true,
			})
			result.Failures++
		}

		return snippetRanMsg{title: title, result: result}
	}
}

// runnerFunc is the slice of the registry the browse model needs.
type runnerFunc func(names ...string) (m.RunResult, error)
