package domain

import "path/filepath"

const (
	// ConfigFileName is the project configuration file looked up in the project directory.
	ConfigFileName = "rivebuild.yaml"

	// DefaultBuildTool is the build tool used for the extension step.
	DefaultBuildTool = "scons"

	// ShellName is the interpreter for the engine and backend scripts.
	ShellName = "sh"

	// BuildScript is the engine and backend build script name.
	BuildScript = "build.sh"

	// DependenciesScript is the backend dependency installer script name.
	DependenciesScript = "make_dependencies.sh"
)

// Layout locates the engine sources relative to the project directory.
type Layout struct {
	// SubmoduleRoot is the repository that owns the engine submodule.
	SubmoduleRoot string
	// Submodule is the engine submodule path relative to SubmoduleRoot.
	Submodule string
	// EngineDir holds the engine build script.
	EngineDir string
	// BackendDepsDir holds the backend dependency installer.
	BackendDepsDir string
	// BackendDepsOutput is created by the installer inside BackendDepsDir.
	BackendDepsOutput string
	// BackendDir holds the backend build script.
	BackendDir string
}

// DefaultLayout returns the layout of the Godot extension repository, where the
// tool runs from the build directory one level below the repository root.
func DefaultLayout() Layout {
	return Layout{
		SubmoduleRoot:     "..",
		Submodule:         "thirdparty/rive-cpp",
		EngineDir:         "../thirdparty/rive-cpp",
		BackendDepsDir:    "../thirdparty/rive-cpp/skia/dependencies",
		BackendDepsOutput: "skia",
		BackendDir:        "../thirdparty/rive-cpp/skia/renderer",
	}
}

// WithDefaults fills every empty field from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	if l.SubmoduleRoot == "" {
		l.SubmoduleRoot = d.SubmoduleRoot
	}
	if l.Submodule == "" {
		l.Submodule = d.Submodule
	}
	if l.EngineDir == "" {
		l.EngineDir = d.EngineDir
	}
	if l.BackendDepsDir == "" {
		l.BackendDepsDir = d.BackendDepsDir
	}
	if l.BackendDepsOutput == "" {
		l.BackendDepsOutput = d.BackendDepsOutput
	}
	if l.BackendDir == "" {
		l.BackendDir = d.BackendDir
	}
	return l
}

// Resolve anchors the directory fields of the layout at projectDir.
// Absolute paths are kept. Submodule and BackendDepsOutput stay relative.
func (l Layout) Resolve(projectDir string) Layout {
	l.SubmoduleRoot = resolvePath(projectDir, l.SubmoduleRoot)
	l.EngineDir = resolvePath(projectDir, l.EngineDir)
	l.BackendDepsDir = resolvePath(projectDir, l.BackendDepsDir)
	l.BackendDir = resolvePath(projectDir, l.BackendDir)
	return l
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
