// Package runner executes build steps in order and applies the failure policy.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/rivebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single run.
type Options struct {
	Policy domain.FailurePolicy
	// DryRun reports the commands instead of running them.
	DryRun bool
}

// Orchestrator runs build steps strictly one after another.
type Orchestrator struct {
	executor ports.Executor
	verifier ports.Verifier
	reporter ports.Reporter
	logger   ports.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// NewOrchestrator creates a new Orchestrator. Processes write to os.Stdout and os.Stderr.
func NewOrchestrator(
	executor ports.Executor,
	verifier ports.Verifier,
	reporter ports.Reporter,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		executor: executor,
		verifier: verifier,
		reporter: reporter,
		logger:   logger,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput sets the streams handed to the processes.
func (o *Orchestrator) WithOutput(stdout, stderr io.Writer) *Orchestrator {
	o.stdout = stdout
	o.stderr = stderr
	return o
}

// Run executes plan in order.
//
// Under PolicyAbort the first failed step ends the run and the remaining steps
// are marked skipped. A cancelled context always ends the run and fails it,
// whatever the policy. The returned error matches domain.ErrBuildFailed and
// carries every step error.
func (o *Orchestrator) Run(ctx context.Context, plan []domain.Step, opts Options) (domain.BuildResult, error) {
	policy := opts.Policy
	if policy == "" {
		policy = domain.DefaultFailurePolicy
	}

	result := domain.BuildResult{Steps: make([]domain.StepResult, len(plan))}
	for i := range plan {
		result.Steps[i] = domain.StepResult{Step: plan[i].Name, Status: domain.StatusPending}
	}

	stopped := false
	for i := range plan {
		step := &plan[i]
		if stopped || ctx.Err() != nil {
			result.Steps[i].Status = domain.StatusSkipped
			continue
		}

		result.Steps[i].Status = domain.StatusRunning
		o.reporter.OnStepStart(step)
		err := o.runStep(ctx, step, opts.DryRun)
		o.reporter.OnStepComplete(step, err)

		if err != nil {
			result.Steps[i].Status = domain.StatusFailed
			result.Steps[i].Err = err
			stopped = policy.StopsOnFailure()
			continue
		}
		result.Steps[i].Status = domain.StatusCompleted
	}

	failed := result.Failed()
	interrupted := ctx.Err() != nil
	succeeded := !interrupted && (len(failed) == 0 || !policy.FailsBuild())
	o.reporter.OnBuildComplete(succeeded)

	if succeeded {
		return result, nil
	}

	errs := []error{domain.ErrBuildFailed}
	if interrupted {
		errs = append(errs, ctx.Err())
	}
	for _, f := range failed {
		errs = append(errs, f.Err)
	}
	return result, errors.Join(errs...)
}

// runStep runs the actions of step until a required one fails.
func (o *Orchestrator) runStep(ctx context.Context, step *domain.Step, dryRun bool) error {
	for i := range step.Actions {
		action := &step.Actions[i]

		if action.Guard != nil {
			done, err := o.verifier.VerifyOutputs(action.Guard.Root, action.Guard.Outputs)
			if err != nil {
				return zerr.With(zerr.Wrap(err, step.Name+" step failed"), "step", step.Name)
			}
			if done {
				o.reporter.OnActionSkip(action)
				continue
			}
		}

		if dryRun {
			o.reporter.OnDryRun(&action.Command)
			continue
		}

		err := o.executor.Execute(ctx, &action.Command, o.stdout, o.stderr)
		if err == nil {
			continue
		}
		if action.Optional && ctx.Err() == nil {
			o.logger.Warn(fmt.Sprintf("%s failed with exit code %d, continuing",
				action.Command.String(), domain.ExitCode(err)))
			continue
		}
		return zerr.With(zerr.Wrap(err, step.Name+" step failed"), "step", step.Name)
	}
	return nil
}
