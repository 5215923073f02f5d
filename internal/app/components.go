package app

import (
	"io"

	"go.trai.ch/rivebuild/internal/core/ports"
)

// Components holds what the entry point needs from the object graph.
type Components struct {
	App      *App
	Logger   ports.Logger
	Reporter ports.Reporter
}

// redirectable is implemented by adapters whose stream can change after wiring.
type redirectable interface {
	SetOutput(w io.Writer)
}

// SetOutput sends step banners and process output to stdout, and logs and
// process errors to stderr.
func (c *Components) SetOutput(stdout, stderr io.Writer) {
	if r, ok := c.Reporter.(redirectable); ok {
		r.SetOutput(stdout)
	}
	if l, ok := c.Logger.(redirectable); ok {
		l.SetOutput(stderr)
	}
	if c.App != nil && c.App.orchestrator != nil {
		c.App.orchestrator.WithOutput(stdout, stderr)
	}
}
