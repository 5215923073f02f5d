package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rivebuild/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rivebuild/internal/adapters/linear" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rivebuild/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rivebuild/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rivebuild/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.VerifierNodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(executor, verifier, reporter, log), nil
		},
	})
}
