package domain

import (
	"errors"
	"fmt"
)

// ExitError reports an external process that exited with a non-zero code.
// Code is -1 when the process could not be started.
type ExitError struct {
	Command string
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("%s: could not start: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: exited with code %d", e.Command, e.Code)
}

// Unwrap returns the underlying process error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Is makes every ExitError match ErrCommandFailed.
func (e *ExitError) Is(target error) bool {
	return target == ErrCommandFailed
}

// ExitCode extracts the process exit code from err, or 0 when err carries none.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 0
}
