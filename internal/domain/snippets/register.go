// Package snippets holds the closures tutorial content: each file registers
// the snippets of one lesson against the domain registry.
package snippets

import (
	"github.com/mouse-blink/kata/internal/domain"
)

// RegisterAll registers every tutorial snippet in lesson order.
func RegisterAll(r domain.Registry) error {
	registrars := []func(domain.Registry) error{
		registerClosures,
		registerCounters,
		registerCapture,
		registerLifetime,
		registerSequences,
	}

	for _, register := range registrars {
		if err := register(r); err != nil {
			return err
		}
	}

	return nil
}
