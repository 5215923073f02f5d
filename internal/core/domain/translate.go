package domain

import "maps"

// DefaultExtensionTarget is the extension build tool's target used when a
// target has no translation.
const DefaultExtensionTarget = "template_debug"

// Tables maps the engine vocabulary onto the extension build tool's vocabulary.
type Tables struct {
	Platforms map[Platform]string
	Targets   map[Target]string
}

// DefaultTables returns the translation tables for the Godot extension build.
// Each call returns fresh maps.
func DefaultTables() Tables {
	return Tables{
		Platforms: map[Platform]string{
			PlatformMacOS:        "macos",
			PlatformLinux:        "linux",
			PlatformWindows:      "windows",
			PlatformIOS:          "ios",
			PlatformIOSSimulator: "ios_sim",
			PlatformAndroid:      "android",
		},
		Targets: map[Target]string{
			TargetDebug:   "template_debug",
			TargetRelease: "template_release",
		},
	}
}

// Translator converts platform and target names between vocabularies.
// Translation is total: it never fails.
type Translator struct {
	platforms map[Platform]string
	targets   map[Target]string
}

// NewTranslator creates a Translator over a private copy of tables.
func NewTranslator(tables Tables) *Translator {
	return &Translator{
		platforms: maps.Clone(tables.Platforms),
		targets:   maps.Clone(tables.Targets),
	}
}

// Platform returns the extension platform name for p, or an empty string when
// p is unset or unknown so the build tool infers it.
func (t *Translator) Platform(p Platform) string {
	return t.platforms[p]
}

// Target returns the extension target name for target, falling back to
// DefaultExtensionTarget.
func (t *Translator) Target(target Target) string {
	if v, ok := t.targets[target]; ok {
		return v
	}
	return DefaultExtensionTarget
}
