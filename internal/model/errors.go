package model

import "fmt"

// DuplicateNameError is returned when registering a snippet or binding under
// a name that is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name already registered: %s", e.Name)
}

// UnknownSnippetError is returned when a run names a snippet that was never
// registered.
type UnknownSnippetError struct {
	Name string
}

func (e *UnknownSnippetError) Error() string {
	return fmt.Sprintf("unknown snippet: %s", e.Name)
}

// UseAfterReleaseError is returned by an unowned-style notifier invoked after
// its owner was released. Intentional failure; the registry recovers it.
type UseAfterReleaseError struct {
	Owner string
}

func (e *UseAfterReleaseError) Error() string {
	return fmt.Sprintf("owner %s used after release", e.Owner)
}

// RunFailedError reports the aggregate failure count of a run.
type RunFailedError struct {
	Failures int
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("%d snippet(s) failed", e.Failures)
}
