// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/rivebuild/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command in its working directory and waits for it to exit.
	//
	// The process inherits standard input; its output goes to stdout and stderr.
	// A non-zero exit is reported as an error matching domain.ErrCommandFailed.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
