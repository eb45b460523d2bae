package snippets

import (
	"fmt"

	"github.com/mouse-blink/kata/internal/domain"
	m "github.com/mouse-blink/kata/internal/model"
)

// square is a named function. The first snippet passes it around exactly
// like the anonymous literal next to it: named and anonymous callables are
// the same kind of value.
func square(x int) int {
	return x * x
}

func registerClosures(r domain.Registry) error {
	if err := r.Register("named-and-anonymous", m.TopicClosures, namedAndAnonymous); err != nil {
		return err
	}

	if err := r.Register("adder-factory", m.TopicClosures, adderFactory); err != nil {
		return err
	}

	return r.Register("immediate-call", m.TopicClosures, immediateCall)
}

func namedAndAnonymous() ([]string, error) {
	var lines []string

	apply := func(f func(int) int, x int) int {
		return f(x)
	}

	double := func(x int) int {
		return x * 2
	}

	lines = append(lines, fmt.Sprintf("apply(square, 5) = %d", apply(square, 5)))
	lines = append(lines, fmt.Sprintf("apply(double, 5) = %d", apply(double, 5)))

	return lines, nil
}

func adderFactory() ([]string, error) {
	var lines []string

	makeAdder := func(n int) func(int) int {
		return func(x int) int {
			return x + n
		}
	}

	add5 := makeAdder(5)
	add100 := makeAdder(100)

	lines = append(lines, fmt.Sprintf("add5(10) = %d", add5(10)))
	lines = append(lines, fmt.Sprintf("add100(10) = %d", add100(10)))
	lines = append(lines, fmt.Sprintf("add5(10) again = %d", add5(10)))

	return lines, nil
}

func immediateCall() ([]string, error) {
	result := func(a, b int) int {
		return a + b
	}(3, 4)

	return []string{fmt.Sprintf("func(3, 4) called in place = %d", result)}, nil
}
