// Package shell provides an executor that runs external processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
// Processes inherit the environment and standard input of rivebuild.
type Executor struct {
	stdin io.Reader
}

// NewExecutor creates a new Executor reading from os.Stdin.
func NewExecutor() *Executor {
	return &Executor{stdin: os.Stdin}
}

// WithStdin replaces the standard input handed to processes.
func (e *Executor) WithStdin(r io.Reader) *Executor {
	e.stdin = r
	return e
}

// Execute runs cmd in cmd.Dir and waits for it to exit.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	if cmd == nil || cmd.Name == "" {
		return nil
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built from validated flags
	c.Dir = cmd.Dir
	c.Stdin = e.stdin
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			exitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}

		failure := &domain.ExitError{Command: cmd.String(), Code: exitCode, Err: err}
		wrapped := zerr.With(zerr.Wrap(failure, "command failed"), "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "command", cmd.String())
		if cmd.Dir != "" {
			wrapped = zerr.With(wrapped, "dir", cmd.Dir)
		}
		return wrapped
	}

	return nil
}
