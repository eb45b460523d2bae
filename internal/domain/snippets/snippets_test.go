package snippets

import (
	"strings"
	"testing"

	"github.com/mouse-blink/kata/internal/domain"
	m "github.com/mouse-blink/kata/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) domain.Registry {
	t.Helper()

	r := domain.NewRegistry()
	require.NoError(t, RegisterAll(r))

	return r
}

func TestRegisterAll_LessonOrder(t *testing.T) {
	r := newRegistry(t)

	want := []string{
		"named-and-anonymous",
		"adder-factory",
		"immediate-call",
		"counter",
		"independent-counters",
		"capture-modes",
		"weak-guard",
		"unowned-after-release",
		"map-filter-reduce",
		"flatten",
		"sort-by-age",
	}

	assert.Equal(t, want, r.Names())
}

func TestRegisterAll_Twice(t *testing.T) {
	r := newRegistry(t)

	err := RegisterAll(r)

	var dup *m.DuplicateNameError
	require.ErrorAs(t, err, &dup)
}

func TestRunAll_OneGroupPerSnippet(t *testing.T) {
	r := newRegistry(t)

	result := r.RunAll()

	assert.Equal(t, r.Len(), result.Ran)

	// Group boundaries must follow registration order with no interleaving.
	var groups []string

	for _, line := range result.Lines {
		if len(groups) == 0 || groups[len(groups)-1] != line.Snippet {
			groups = append(groups, line.Snippet)
		}
	}

	assert.Equal(t, r.Names(), groups)
}

func TestRunAll_OnlyUnownedSnippetFails(t *testing.T) {
	r := newRegistry(t)

	result := r.RunAll()

	assert.Equal(t, 1, result.Failures)

	var errorLines []m.LogLine

	for _, line := range result.Lines {
		if line.IsError {
			errorLines = append(errorLines, line)
		}
	}

	require.Len(t, errorLines, 1)
	assert.Equal(t, "unowned-after-release", errorLines[0].Snippet)
	assert.Contains(t, errorLines[0].Text, "used after release")
}

func TestCounterSnippet_Accumulates(t *testing.T) {
	r := newRegistry(t)

	result, err := r.Run("counter")
	require.NoError(t, err)

	texts := lineTexts(result)
	require.Len(t, texts, 3)
	assert.Equal(t, "counter() = 5", texts[0])
	assert.Equal(t, "counter() = 10", texts[1])
	assert.Equal(t, "counter() = 15", texts[2])
}

func TestIndependentCountersSnippet(t *testing.T) {
	r := newRegistry(t)

	result, err := r.Run("independent-counters")
	require.NoError(t, err)

	texts := lineTexts(result)
	require.Len(t, texts, 4)
	assert.Equal(t, "first() = 1", texts[0])
	assert.Equal(t, "first() = 2", texts[1])
	assert.Equal(t, "second() = 101", texts[2])
	assert.Equal(t, "first() = 3", texts[3])
}

func TestCaptureModesSnippet(t *testing.T) {
	r := newRegistry(t)

	result, err := r.Run("capture-modes")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Failures)

	texts := lineTexts(result)
	require.Len(t, texts, 2)
	assert.Equal(t, "before mutation: shared = 10, snapshot = 10", texts[0])
	assert.Equal(t, "after set to 30: shared = 30, snapshot = 10", texts[1])
}

func TestWeakGuardSnippet_NotifiesOnce(t *testing.T) {
	r := newRegistry(t)

	result, err := r.Run("weak-guard")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Failures)

	texts := lineTexts(result)
	require.Len(t, texts, 2)
	assert.Equal(t, `owner says "hello"`, texts[0])
	assert.Equal(t, "notified twice, owner released = true", texts[1])
}

func TestSequencesSnippets(t *testing.T) {
	r := newRegistry(t)

	result, err := r.Run("map-filter-reduce", "flatten", "sort-by-age")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Failures)

	joined := strings.Join(lineTexts(result), "\n")

	for _, want := range []string{
		"map *10 over [1 2 3] = [10 20 30]",
		"filter %3==0 over 1..10 = [3 6 9]",
		"reduce + over 1..10 = 55",
		"filter even then reduce + = 30",
		"flatten [[1 3] [2] []] = [1 3 2]",
		"sorted by age = [ivo nell mara]",
	} {
		assert.Contains(t, joined, want)
	}
}

func TestSnippets_DeterministicAcrossRuns(t *testing.T) {
	r := newRegistry(t)

	assert.Equal(t, r.RunAll(), r.RunAll())
}

func lineTexts(result m.RunResult) []string {
	texts := make([]string, 0, len(result.Lines))
	for _, line := range result.Lines {
		texts = append(texts, line.Text)
	}

	return texts
}
