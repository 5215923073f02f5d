package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidPlatform is returned when a platform name is not one of the supported platforms.
	ErrInvalidPlatform = zerr.New("invalid platform")

	// ErrInvalidArch is returned when an architecture name is not one of the supported architectures.
	ErrInvalidArch = zerr.New("invalid architecture")

	// ErrInvalidTarget is returned when a target is neither debug nor release.
	ErrInvalidTarget = zerr.New("invalid target, expected 'debug' or 'release'")

	// ErrInvalidFailurePolicy is returned when a failure policy is not abort, continue or ignore.
	ErrInvalidFailurePolicy = zerr.New("invalid failure policy, expected 'abort', 'continue' or 'ignore'")

	// ErrInvalidLogFormat is returned when the log format is neither pretty nor json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrMissingFlagValue is returned when a flag that takes a value is the last argument.
	ErrMissingFlagValue = zerr.New("flag needs an argument")

	// ErrInvalidFlagValue is returned when a flag value cannot be parsed.
	ErrInvalidFlagValue = zerr.New("invalid flag value")

	// ErrCommandFailed is returned when an external process exits with a non-zero code
	// or cannot be started.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildFailed is returned when at least one build step failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrFailedToGetWorkDir is returned when the working directory cannot be determined.
	ErrFailedToGetWorkDir = zerr.New("failed to get working directory")

	// ErrGuardCheckFailed is returned when the existence of a guard path cannot be checked.
	ErrGuardCheckFailed = zerr.New("failed to check guard path")
)

// IsUsageError reports whether err was caused by invalid command line input
// or an unusable config file.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrInvalidPlatform) ||
		errors.Is(err, ErrInvalidArch) ||
		errors.Is(err, ErrInvalidTarget) ||
		errors.Is(err, ErrInvalidFailurePolicy) ||
		errors.Is(err, ErrInvalidLogFormat) ||
		errors.Is(err, ErrMissingFlagValue) ||
		errors.Is(err, ErrInvalidFlagValue) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigReadFailed) ||
		errors.Is(err, ErrConfigParseFailed)
}
