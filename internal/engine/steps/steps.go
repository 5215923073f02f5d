// Package steps turns a build configuration into the ordered build steps.
package steps

import (
	"strings"

	"go.trai.ch/rivebuild/internal/core/domain"
)

// Step names.
const (
	EngineStep    = "engine"
	BackendStep   = "backend"
	ExtensionStep = "extension"
)

const (
	autoValue = "<auto>"

	// iosSimulatorPlatform is the extension platform that the build tool
	// expresses as the iOS platform plus a simulator switch.
	iosSimulatorPlatform = "ios_sim"
)

// Environment is where a plan runs.
type Environment struct {
	// ProjectDir is the absolute directory rivebuild was started in.
	ProjectDir string
	// Layout must already be resolved against ProjectDir.
	Layout    domain.Layout
	BuildTool string
}

// Planner builds the steps for a configuration.
type Planner struct {
	translator *domain.Translator
}

// NewPlanner creates a Planner translating names with translator.
func NewPlanner(translator *domain.Translator) *Planner {
	return &Planner{translator: translator}
}

// Plan returns the steps to run, in order. The extension step is left out
// for the clean target.
func (p *Planner) Plan(cfg domain.BuildConfig, env Environment) []domain.Step {
	plan := []domain.Step{
		p.Engine(cfg, env.Layout),
		p.Backend(cfg, env.Layout),
	}
	if !cfg.Target.IsClean() {
		plan = append(plan, p.Extension(cfg, env.ProjectDir, env.BuildTool))
	}
	return plan
}

// Engine builds the step that updates the engine submodule and runs its build script.
func (p *Planner) Engine(cfg domain.BuildConfig, layout domain.Layout) domain.Step {
	return domain.Step{
		Name:   EngineStep,
		Title:  "Running Rive's build script...",
		Fields: engineFields(cfg),
		Actions: []domain.Action{
			submoduleUpdate(layout),
			{Command: scriptCommand(cfg, layout.EngineDir)},
		},
	}
}

// Backend builds the step that installs the backend dependencies once and
// then runs the backend build script.
func (p *Planner) Backend(cfg domain.BuildConfig, layout domain.Layout) domain.Step {
	return domain.Step{
		Name:   BackendStep,
		Title:  "Running Rive's skia build script...",
		Fields: engineFields(cfg),
		Actions: []domain.Action{
			submoduleUpdate(layout),
			{
				Command: domain.Command{
					Name: domain.ShellName,
					Args: []string{domain.DependenciesScript},
					Dir:  layout.BackendDepsDir,
				},
				Guard: &domain.Guard{
					Root:    layout.BackendDepsDir,
					Outputs: []string{layout.BackendDepsOutput},
				},
				SkipNotice: "Skia is already built!",
			},
			{Command: scriptCommand(cfg, layout.BackendDir)},
		},
	}
}

// Extension builds the step that runs the extension build tool in dir.
func (p *Planner) Extension(cfg domain.BuildConfig, dir, tool string) domain.Step {
	if tool == "" {
		tool = domain.DefaultBuildTool
	}

	platform := p.translator.Platform(cfg.Platform)
	return domain.Step{
		Name:  ExtensionStep,
		Title: "Building Rive Extension...",
		Fields: []domain.Field{
			{Label: "Platform", Value: orAuto(platform)},
			{Label: "Architecture", Value: orAuto(cfg.Arch.String())},
			{Label: "Target", Value: p.translator.Target(cfg.Target)},
			{Label: "Other arguments", Value: strings.Join(cfg.Extra, ", ")},
		},
		Actions: []domain.Action{{
			Command: domain.Command{
				Name: tool,
				Args: p.ExtensionArgs(cfg),
				Dir:  dir,
			},
		}},
	}
}

// ExtensionArgs returns the build tool arguments: platform, target and arch
// when known, followed by the passthrough arguments in their original order.
func (p *Planner) ExtensionArgs(cfg domain.BuildConfig) []string {
	args := make([]string, 0, len(cfg.Extra)+4)

	switch platform := p.translator.Platform(cfg.Platform); platform {
	case "":
	case iosSimulatorPlatform:
		args = append(args, "platform=ios", "ios_simulator=yes")
	default:
		args = append(args, "platform="+platform)
	}

	if target := p.translator.Target(cfg.Target); target != "" {
		args = append(args, "target="+target)
	}
	if !cfg.Arch.IsAuto() {
		args = append(args, "arch="+cfg.Arch.String())
	}

	return append(args, cfg.Extra...)
}

// ScriptArgs returns the arguments of the engine and backend build scripts.
func ScriptArgs(cfg domain.BuildConfig) []string {
	args := []string{domain.BuildScript}
	if !cfg.Platform.IsAuto() {
		args = append(args, "-p", cfg.Platform.String())
	}
	return append(args, cfg.Target.String())
}

func scriptCommand(cfg domain.BuildConfig, dir string) domain.Command {
	return domain.Command{
		Name: domain.ShellName,
		Args: ScriptArgs(cfg),
		Dir:  dir,
	}
}

// submoduleUpdate refreshes the engine checkout. Its failure is reported but
// does not fail the step.
func submoduleUpdate(layout domain.Layout) domain.Action {
	return domain.Action{
		Command: domain.Command{
			Name: "git",
			Args: []string{"submodule", "update", layout.Submodule},
			Dir:  layout.SubmoduleRoot,
		},
		Optional: true,
	}
}

func engineFields(cfg domain.BuildConfig) []domain.Field {
	return []domain.Field{
		{Label: "Platform", Value: orAuto(cfg.Platform.String())},
		{Label: "Target", Value: cfg.Target.String()},
	}
}

func orAuto(s string) string {
	if s == "" {
		return autoValue
	}
	return s
}
