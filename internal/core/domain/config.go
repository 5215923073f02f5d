package domain

import "slices"

// BuildConfig is the validated configuration of a single invocation.
// It is constructed once from the command line and never mutated afterwards.
type BuildConfig struct {
	Platform Platform
	Arch     Arch
	Target   Target
	// Extra holds the passthrough arguments for the extension build tool,
	// in the order they were given.
	Extra []string
}

// NewBuildConfig validates the raw flag values and resolves the effective target.
// When clean is set the target is forced to TargetClean, whatever target says.
func NewBuildConfig(platform, arch, target string, clean bool, extra []string) (BuildConfig, error) {
	p, err := ParsePlatform(platform)
	if err != nil {
		return BuildConfig{}, err
	}

	a, err := ParseArch(arch)
	if err != nil {
		return BuildConfig{}, err
	}

	t, err := ParseTarget(target)
	if err != nil {
		return BuildConfig{}, err
	}
	if clean {
		t = TargetClean
	}

	return BuildConfig{
		Platform: p,
		Arch:     a,
		Target:   t,
		Extra:    slices.Clone(extra),
	}, nil
}
