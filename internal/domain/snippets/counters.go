package snippets

import (
	"fmt"

	"github.com/mouse-blink/kata/internal/domain"
	m "github.com/mouse-blink/kata/internal/model"
)

func registerCounters(r domain.Registry) error {
	if err := r.Register("counter", m.TopicClosures, counter); err != nil {
		return err
	}

	return r.Register("independent-counters", m.TopicClosures, independentCounters)
}

// counter shows accumulating captured state: the closure keeps its total
// alive between calls instead of resetting.
func counter() ([]string, error) {
	var lines []string

	next := domain.MakeCounter(0, 5)

	for range 3 {
		lines = append(lines, fmt.Sprintf("counter() = %d", next()))
	}

	return lines, nil
}

// independentCounters shows that each counter captures its own cell: two
// counters never alias.
func independentCounters() ([]string, error) {
	var lines []string

	first := domain.MakeCounter(0, 1)
	second := domain.MakeCounter(100, 1)

	lines = append(lines, fmt.Sprintf("first() = %d", first()))
	lines = append(lines, fmt.Sprintf("first() = %d", first()))
	lines = append(lines, fmt.Sprintf("second() = %d", second()))
	lines = append(lines, fmt.Sprintf("first() = %d", first()))

	return lines, nil
}
