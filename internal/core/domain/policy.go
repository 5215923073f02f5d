package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// FailurePolicy decides what happens after a build step fails.
type FailurePolicy string

const (
	// PolicyAbort stops at the first failed step and fails the build.
	PolicyAbort FailurePolicy = "abort"
	// PolicyContinue runs every step and fails the build if any step failed.
	PolicyContinue FailurePolicy = "continue"
	// PolicyIgnore runs every step and always reports success.
	PolicyIgnore FailurePolicy = "ignore"
)

// DefaultFailurePolicy is used when neither the flag nor the config file sets one.
const DefaultFailurePolicy = PolicyAbort

// ParseFailurePolicy validates s. An empty string yields the default policy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "":
		return DefaultFailurePolicy, nil
	case PolicyAbort, PolicyContinue, PolicyIgnore:
		return FailurePolicy(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidFailurePolicy, fmt.Sprintf("unsupported failure policy %q", s)), "value", s)
	}
}

// StopsOnFailure reports whether later steps are skipped after a failure.
func (p FailurePolicy) StopsOnFailure() bool {
	return p == PolicyAbort
}

// FailsBuild reports whether a failed step makes the build fail.
func (p FailurePolicy) FailsBuild() bool {
	return p != PolicyIgnore
}
