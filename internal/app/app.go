// Package app implements the application layer for rivebuild.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/rivebuild/internal/core/ports"
	"go.trai.ch/rivebuild/internal/engine/runner"
	"go.trai.ch/rivebuild/internal/engine/steps"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *runner.Orchestrator
	logger       ports.Logger
	planner      *steps.Planner
	workDir      string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, orchestrator *runner.Orchestrator, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		orchestrator: orchestrator,
		logger:       log,
		planner:      steps.NewPlanner(domain.NewTranslator(domain.DefaultTables())),
	}
}

// WithWorkDir sets the project directory instead of the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is an explicit config file. Empty means the optional
	// rivebuild.yaml in the project directory.
	ConfigPath string
	// OnFailure overrides the config file when set.
	OnFailure domain.FailurePolicy
	DryRun    bool
}

// Run builds the engine, the backend and, unless cleaning, the extension.
func (a *App) Run(ctx context.Context, cfg domain.BuildConfig, opts RunOptions) error {
	projectDir, err := a.projectDir()
	if err != nil {
		return err
	}

	settings, err := a.configLoader.Load(projectDir, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	policy := settings.OnFailure
	if opts.OnFailure != "" {
		policy = opts.OnFailure
	}

	plan := a.planner.Plan(cfg, steps.Environment{
		ProjectDir: projectDir,
		Layout:     settings.Layout.Resolve(projectDir),
		BuildTool:  settings.BuildTool,
	})

	if opts.DryRun {
		a.logger.Info("dry run, commands are printed but not executed")
	}

	_, err = a.orchestrator.Run(ctx, plan, runner.Options{Policy: policy, DryRun: opts.DryRun})
	return err
}

// projectDir resolves the project directory once, as an absolute path.
func (a *App) projectDir() (string, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(domain.ErrFailedToGetWorkDir, err.Error())
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrFailedToGetWorkDir, err.Error()), "dir", dir)
	}
	return abs, nil
}
