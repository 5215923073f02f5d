package linear_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rivebuild/internal/adapters/linear"
	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func engineStep() *domain.Step {
	return &domain.Step{
		Name:  "engine",
		Title: "Running Rive's build script...",
		Fields: []domain.Field{
			{Label: "Platform", Value: "<auto>"},
			{Label: "Target", Value: "debug"},
		},
	}
}

func exitErr(code int) error {
	return zerr.Wrap(&domain.ExitError{Command: "sh build.sh", Code: code}, "command failed")
}

func TestReporter_StepSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporterWithProfile(&buf, termenv.Ascii)

	step := engineStep()
	r.OnStepStart(step)
	r.OnStepComplete(step, nil)

	g := goldie.New(t)
	g.Assert(t, "step_success_plain", buf.Bytes())
}

func TestReporter_StepFailure(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporterWithProfile(&buf, termenv.Ascii)

	step := &domain.Step{
		Name:  "backend",
		Title: "Running Rive's skia build script...",
		Fields: []domain.Field{
			{Label: "Platform", Value: "macosx"},
			{Label: "Target", Value: "release"},
		},
	}
	r.OnStepStart(step)
	r.OnActionSkip(&domain.Action{SkipNotice: "Skia is already built!"})
	r.OnActionSkip(&domain.Action{})
	r.OnStepComplete(step, exitErr(2))

	g := goldie.New(t)
	g.Assert(t, "step_failure_plain", buf.Bytes())
}

func TestReporter_BuildComplete(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporterWithProfile(&buf, termenv.Ascii)

	r.OnBuildComplete(true)
	assert.Equal(t, "Build successful!\n\n", buf.String())

	buf.Reset()
	r.OnBuildComplete(false)
	assert.Equal(t, "Build failed!\n\n", buf.String())
}

func TestReporter_ANSI(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporterWithProfile(&buf, termenv.ANSI)

	step := &domain.Step{
		Name:   "engine",
		Title:  "Running Rive's build script...",
		Fields: []domain.Field{{Label: "Platform", Value: "macosx"}},
	}
	r.OnStepStart(step)
	r.OnStepComplete(step, exitErr(1))
	r.OnBuildComplete(false)

	g := goldie.New(t)
	g.Assert(t, "step_ansi", buf.Bytes())
}

func TestReporter_DryRun(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporterWithProfile(&buf, termenv.Ascii)

	r.OnDryRun(&domain.Command{
		Name: "sh",
		Args: []string{"build.sh", "-p", "macosx", "release"},
		Dir:  "/src/thirdparty/rive-cpp",
	})
	r.OnDryRun(&domain.Command{Name: "scons", Args: []string{"target=template_debug"}})

	assert.Equal(t,
		"$ cd /src/thirdparty/rive-cpp && sh build.sh -p macosx release\n$ scons target=template_debug\n",
		buf.String())
}

func TestReporter_FailureWithoutExitCode(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporterWithProfile(&buf, termenv.Ascii)

	r.OnStepComplete(engineStep(), errors.New("boom"))
	assert.Equal(t, "Failed: boom\n\n", buf.String())
}

func TestNewReporter_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := linear.NewReporter(&buf)
	r.OnBuildComplete(true)

	assert.Equal(t, "Build successful!\n\n", buf.String())
}
