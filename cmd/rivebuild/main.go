// Package main is the entry point for the rivebuild tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rivebuild/cmd/rivebuild/commands"
	"go.trai.ch/rivebuild/internal/app"
	"go.trai.ch/rivebuild/internal/core/domain"
	_ "go.trai.ch/rivebuild/internal/wiring"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitError
	}
	defer cleanup()
	components.SetOutput(stdout, stderr)

	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// The reporter already announced the failed build.
		if errors.Is(err, domain.ErrBuildFailed) {
			return exitError
		}
		components.Logger.Error(err)
		if domain.IsUsageError(err) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}
