package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Target selects the build profile.
type Target string

const (
	// TargetDebug is the default build profile.
	TargetDebug Target = "debug"
	// TargetRelease is the optimised build profile.
	TargetRelease Target = "release"
	// TargetClean removes build outputs instead of building.
	// It is never accepted as a --target value, only produced by the clean flag.
	TargetClean Target = "clean"
)

// ParseTarget validates a user supplied target. Only debug and release are accepted;
// an empty string yields TargetDebug.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case "":
		return TargetDebug, nil
	case TargetDebug, TargetRelease:
		return Target(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidTarget, fmt.Sprintf("unsupported target %q", s)), "value", s)
	}
}

// IsClean reports whether the target is the clean pseudo-target.
func (t Target) IsClean() bool {
	return t == TargetClean
}

func (t Target) String() string {
	return string(t)
}
