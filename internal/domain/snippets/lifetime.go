package snippets

import (
	"fmt"

	"github.com/mouse-blink/kata/internal/domain"
	m "github.com/mouse-blink/kata/internal/model"
)

func registerLifetime(r domain.Registry) error {
	if err := r.Register("weak-guard", m.TopicLifetime, weakGuard); err != nil {
		return err
	}

	return r.Register("unowned-after-release", m.TopicLifetime, unownedAfterRelease)
}

// weakGuard shows the weak-self pattern: after the owner is released the
// guarded notifier does nothing instead of failing.
func weakGuard() ([]string, error) {
	var lines []string

	owner := domain.NewHandle("greeter", "hello")

	notify := domain.WeakNotifier(owner, func(msg string) {
		lines = append(lines, fmt.Sprintf("owner says %q", msg))
	})

	notify()
	owner.Release()
	notify()

	lines = append(lines, fmt.Sprintf("notified twice, owner released = %v", owner.Released()))

	return lines, nil
}

// unownedAfterRelease trusts the owner to stay alive and is wrong about it.
// The snippet fails on purpose; the registry records the failure and keeps
// running the rest of the tutorial.
func unownedAfterRelease() ([]string, error) {
	var lines []string

	owner := domain.NewHandle("greeter", "hello")

	notify := domain.UnownedNotifier(owner, func(msg string) {
		lines = append(lines, fmt.Sprintf("owner says %q", msg))
	})

	if err := notify(); err != nil {
		return lines, err
	}

	owner.Release()

	if err := notify(); err != nil {
		return lines, err
	}

	return lines, nil
}
