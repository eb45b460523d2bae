package snippets

import (
	"fmt"

	"github.com/mouse-blink/kata/internal/domain"
	m "github.com/mouse-blink/kata/internal/model"
)

func registerCapture(r domain.Registry) error {
	return r.Register("capture-modes", m.TopicCapture, captureModes)
}

// captureModes binds the same value twice, once per capture mode, creates
// both getters, then mutates externally. The reference getter sees the
// mutation; the snapshot getter keeps the creation-time value.
func captureModes() ([]string, error) {
	var lines []string

	sandbox := domain.NewSandbox()

	if err := sandbox.Bind("shared", 10, m.CaptureByReference); err != nil {
		return lines, err
	}

	if err := sandbox.Bind("snapshot", 10, m.CaptureByValue); err != nil {
		return lines, err
	}

	byRef, err := sandbox.Getter("shared")
	if err != nil {
		return lines, err
	}

	byValue, err := sandbox.Getter("snapshot")
	if err != nil {
		return lines, err
	}

	lines = append(lines, fmt.Sprintf("before mutation: shared = %v, snapshot = %v", byRef(), byValue()))

	if err := sandbox.Set("shared", 30); err != nil {
		return lines, err
	}

	if err := sandbox.Set("snapshot", 30); err != nil {
		return lines, err
	}

	lines = append(lines, fmt.Sprintf("after set to 30: shared = %v, snapshot = %v", byRef(), byValue()))

	return lines, nil
}
