package ports

import "go.trai.ch/rivebuild/internal/core/domain"

// Reporter presents build progress to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnStepStart prints the step banner and its resolved fields.
	OnStepStart(step *domain.Step)

	// OnActionSkip is called when a guarded action is skipped.
	OnActionSkip(action *domain.Action)

	// OnDryRun is called instead of running a command in dry-run mode.
	OnDryRun(cmd *domain.Command)

	// OnStepComplete prints the step's result. err is nil on success.
	OnStepComplete(step *domain.Step, err error)

	// OnBuildComplete prints the final banner.
	OnBuildComplete(succeeded bool)
}
