package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the store and materializer.
var (
	// ErrNotFound signals a blueprint name that is not in the store.
	ErrNotFound = errors.New("blueprint not found")

	// ErrConflict signals a destination directory or blueprint name that
	// already exists.
	ErrConflict = errors.New("already exists")

	// ErrStoreCorrupt marks an unreadable or invalid blueprint document.
	// It is recoverable: the store degrades to an empty collection and the
	// error is surfaced as a warning only.
	ErrStoreCorrupt = errors.New("blueprint store unreadable")
)

// ValidationError reports a bad project or blueprint name. Recoverable: the
// caller re-prompts.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// IOFailure wraps a fatal filesystem error with the offending path. It aborts
// the remaining plan; there is no rollback of partially written output.
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error { return e.Err }

// ExitCode maps an error to the process exit code: 0 on success, 1 on any
// fatal error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
