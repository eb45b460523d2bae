package domain

import (
	"errors"
	"fmt"
	"testing"

	m "github.com/mouse-blink/kata/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linesBody(lines ...string) m.Body {
	return func() ([]string, error) {
		return lines, nil
	}
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("first", m.TopicClosures, linesBody("a")))

	err := r.Register("first", m.TopicCapture, linesBody("b"))

	var dup *m.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "first", dup.Name)

	// Failed registration leaves the registry unchanged.
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"first"}, r.Names())
}

func TestRegistry_Register_NilBody(t *testing.T) {
	r := NewRegistry()

	require.Error(t, r.Register("broken", m.TopicClosures, nil))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_RunAll_OrderAndSequence(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("one", m.TopicClosures, linesBody("1a", "1b")))
	require.NoError(t, r.Register("two", m.TopicClosures, linesBody("2a")))
	require.NoError(t, r.Register("three", m.TopicClosures, linesBody("3a")))

	result := r.RunAll()

	require.Equal(t, 3, result.Ran)
	assert.Equal(t, 0, result.Failures)
	require.Len(t, result.Lines, 4)

	wantSnippets := []string{"one", "one", "two", "three"}
	wantTexts := []string{"1a", "1b", "2a", "3a"}

	for i, line := range result.Lines {
		assert.Equal(t, wantSnippets[i], line.Snippet)
		assert.Equal(t, wantTexts[i], line.Text)
		assert.Equal(t, i, line.Seq, "sequence must be contiguous and run-global")
		assert.False(t, line.IsError)
	}
}

func TestRegistry_RunAll_IsolatesFailures(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("ok-before", m.TopicClosures, linesBody("before")))
	require.NoError(t, r.Register("erroring", m.TopicLifetime, func() ([]string, error) {
		return []string{"partial"}, errors.New("boom")
	}))
	require.NoError(t, r.Register("panicking", m.TopicLifetime, func() ([]string, error) {
		panic("kaboom")
	}))
	require.NoError(t, r.Register("ok-after", m.TopicClosures, linesBody("after")))

	result := r.RunAll()

	require.Equal(t, 4, result.Ran, "a failure must not stop the run")
	assert.Equal(t, 2, result.Failures)

	var errorLines []m.LogLine

	for _, line := range result.Lines {
		if line.IsError {
			errorLines = append(errorLines, line)
		}
	}

	require.Len(t, errorLines, 2)
	assert.Equal(t, "erroring", errorLines[0].Snippet)
	assert.Equal(t, "error: boom", errorLines[0].Text)
	assert.Equal(t, "panicking", errorLines[1].Snippet)
	assert.Equal(t, "error: panic: kaboom", errorLines[1].Text)

	// The snippet after the failures still produced its line.
	last := result.Lines[len(result.Lines)-1]
	assert.Equal(t, "ok-after", last.Snippet)
	assert.Equal(t, "after", last.Text)

	for i, line := range result.Lines {
		assert.Equal(t, i, line.Seq)
	}
}

func TestRegistry_RunAll_Deterministic(t *testing.T) {
	r := NewRegistry()

	for i := range 5 {
		name := fmt.Sprintf("snippet-%d", i)
		require.NoError(t, r.Register(name, m.TopicSequences, linesBody(name+" output")))
	}

	first := r.RunAll()
	second := r.RunAll()

	assert.Equal(t, first, second)
}

func TestRegistry_Run_UnknownName(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("known", m.TopicClosures, linesBody("x")))

	_, err := r.Run("missing")

	var unknown *m.UnknownSnippetError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Name)
}

func TestRegistry_Run_SelectionKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("a", m.TopicClosures, linesBody("a")))
	require.NoError(t, r.Register("b", m.TopicClosures, linesBody("b")))
	require.NoError(t, r.Register("c", m.TopicClosures, linesBody("c")))

	result, err := r.Run("c", "a")
	require.NoError(t, err)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, "a", result.Lines[0].Snippet)
	assert.Equal(t, "c", result.Lines[1].Snippet)
	assert.Equal(t, 2, result.Ran)
}

func TestRegistry_Run_NoNamesRunsAll(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("a", m.TopicClosures, linesBody("a")))
	require.NoError(t, r.Register("b", m.TopicClosures, linesBody("b")))

	result, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Ran)
}
