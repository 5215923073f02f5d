package app_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rivebuild/internal/app"
	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/rivebuild/internal/core/ports/mocks"
	"go.trai.ch/rivebuild/internal/engine/runner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	verifier *mocks.MockVerifier
	reporter *mocks.MockReporter
	logger   *mocks.MockLogger
	dir      string
	app      *app.App
	commands []domain.Command
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		verifier: mocks.NewMockVerifier(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		dir:      t.TempDir(),
	}

	orch := runner.NewOrchestrator(h.executor, h.verifier, h.reporter, h.logger).WithOutput(io.Discard, io.Discard)
	h.app = app.New(h.loader, orch, h.logger).WithWorkDir(h.dir)

	h.reporter.EXPECT().OnStepStart(gomock.Any()).AnyTimes()
	h.reporter.EXPECT().OnStepComplete(gomock.Any(), gomock.Any()).AnyTimes()
	h.reporter.EXPECT().OnActionSkip(gomock.Any()).AnyTimes()
	h.verifier.EXPECT().VerifyOutputs(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	return h
}

// record makes the executor remember every command and fail the ones for which fail returns true.
func (h *harness) record(fail func(domain.Command) bool) {
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
			h.commands = append(h.commands, *cmd)
			if fail != nil && fail(*cmd) {
				return &domain.ExitError{Command: cmd.String(), Code: 1}
			}
			return nil
		}).AnyTimes()
}

func (h *harness) argvs() []string {
	out := make([]string, len(h.commands))
	for i, c := range h.commands {
		out[i] = c.String()
	}
	return out
}

func TestApp_Run_ReleaseForMacOS(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.dir, "").Return(domain.DefaultSettings(), nil)
	h.record(nil)
	h.reporter.EXPECT().OnBuildComplete(true)

	cfg, err := domain.NewBuildConfig("macosx", "arm64", "release", false, nil)
	require.NoError(t, err)

	require.NoError(t, h.app.Run(context.Background(), cfg, app.RunOptions{}))

	assert.Equal(t, []string{
		"git submodule update thirdparty/rive-cpp",
		"sh build.sh -p macosx release",
		"git submodule update thirdparty/rive-cpp",
		"sh make_dependencies.sh",
		"sh build.sh -p macosx release",
		"scons platform=macos target=template_release arch=arm64",
	}, h.argvs())

	parent := filepath.Dir(h.dir)
	assert.Equal(t, parent, h.commands[0].Dir)
	assert.Equal(t, filepath.Join(parent, "thirdparty", "rive-cpp"), h.commands[1].Dir)
	assert.Equal(t, filepath.Join(parent, "thirdparty", "rive-cpp", "skia", "dependencies"), h.commands[3].Dir)
	assert.Equal(t, filepath.Join(parent, "thirdparty", "rive-cpp", "skia", "renderer"), h.commands[4].Dir)
	assert.Equal(t, h.dir, h.commands[5].Dir)
}

func TestApp_Run_CleanSkipsExtension(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.dir, "").Return(domain.DefaultSettings(), nil)
	h.record(nil)
	h.reporter.EXPECT().OnBuildComplete(true)

	cfg, err := domain.NewBuildConfig("", "", "release", true, []string{"-j4"})
	require.NoError(t, err)

	require.NoError(t, h.app.Run(context.Background(), cfg, app.RunOptions{}))

	require.Len(t, h.commands, 5)
	assert.Equal(t, "sh build.sh clean", h.commands[1].String())
	for _, c := range h.commands {
		assert.NotEqual(t, domain.DefaultBuildTool, c.Name)
	}
}

func TestApp_Run_FlagPolicyOverridesFile(t *testing.T) {
	h := newHarness(t)
	settings := domain.DefaultSettings()
	settings.OnFailure = domain.PolicyIgnore
	h.loader.EXPECT().Load(h.dir, "").Return(settings, nil)
	h.record(func(c domain.Command) bool { return c.Name == domain.ShellName })
	h.reporter.EXPECT().OnBuildComplete(false)

	cfg, err := domain.NewBuildConfig("", "", "", false, nil)
	require.NoError(t, err)

	err = h.app.Run(context.Background(), cfg, app.RunOptions{OnFailure: domain.PolicyAbort})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Equal(t, []string{"git submodule update thirdparty/rive-cpp", "sh build.sh debug"}, h.argvs())
}

func TestApp_Run_FilePolicyApplies(t *testing.T) {
	h := newHarness(t)
	settings := domain.DefaultSettings()
	settings.OnFailure = domain.PolicyIgnore
	h.loader.EXPECT().Load(h.dir, "").Return(settings, nil)
	h.record(func(c domain.Command) bool { return c.Name == domain.ShellName })
	h.reporter.EXPECT().OnBuildComplete(true)

	cfg, err := domain.NewBuildConfig("", "", "", false, nil)
	require.NoError(t, err)

	require.NoError(t, h.app.Run(context.Background(), cfg, app.RunOptions{}))
	assert.Len(t, h.commands, 5)
}

func TestApp_Run_CustomLayoutAndTool(t *testing.T) {
	h := newHarness(t)
	settings := domain.DefaultSettings()
	settings.BuildTool = "scons-3"
	settings.Layout.EngineDir = "/opt/rive"
	h.loader.EXPECT().Load(h.dir, "custom.yaml").Return(settings, nil)
	h.record(nil)
	h.reporter.EXPECT().OnBuildComplete(true)

	cfg, err := domain.NewBuildConfig("", "", "", false, []string{"--foo", "bar"})
	require.NoError(t, err)

	require.NoError(t, h.app.Run(context.Background(), cfg, app.RunOptions{ConfigPath: "custom.yaml"}))
	assert.Equal(t, "/opt/rive", h.commands[1].Dir)
	assert.Equal(t, "scons-3 target=template_debug --foo bar", h.commands[5].String())
}

func TestApp_Run_DryRun(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.dir, "").Return(domain.DefaultSettings(), nil)
	h.logger.EXPECT().Info("dry run, commands are printed but not executed")
	h.reporter.EXPECT().OnDryRun(gomock.Any()).Times(6)
	h.reporter.EXPECT().OnBuildComplete(true)

	cfg, err := domain.NewBuildConfig("", "", "", false, nil)
	require.NoError(t, err)

	require.NoError(t, h.app.Run(context.Background(), cfg, app.RunOptions{DryRun: true}))
}

func TestApp_Run_ConfigError(t *testing.T) {
	h := newHarness(t)
	loadErr := zerr.Wrap(domain.ErrConfigParseFailed, "yaml: line 1")
	h.loader.EXPECT().Load(h.dir, "").Return(domain.Settings{}, loadErr)

	cfg, err := domain.NewBuildConfig("", "", "", false, nil)
	require.NoError(t, err)

	err = h.app.Run(context.Background(), cfg, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.True(t, domain.IsUsageError(err))
}
