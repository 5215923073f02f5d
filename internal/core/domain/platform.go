package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Platform is an operating system or environment the extension is built for,
// named in the engine's vocabulary.
type Platform string

// PlatformAuto leaves the platform to the underlying build tools.
const PlatformAuto Platform = ""

// Supported platforms.
const (
	PlatformMacOS        Platform = "macosx"
	PlatformLinux        Platform = "linux"
	PlatformWindows      Platform = "windows"
	PlatformIOS          Platform = "ios"
	PlatformIOSSimulator Platform = "ios_sim"
	PlatformAndroid      Platform = "android"
)

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformMacOS,
		PlatformLinux,
		PlatformWindows,
		PlatformIOS,
		PlatformIOSSimulator,
		PlatformAndroid,
	}
}

// ParsePlatform validates s against the supported platforms.
// An empty string yields PlatformAuto.
func ParsePlatform(s string) (Platform, error) {
	if s == "" {
		return PlatformAuto, nil
	}
	for _, p := range Platforms() {
		if string(p) == s {
			return p, nil
		}
	}
	err := zerr.Wrap(ErrInvalidPlatform, fmt.Sprintf("unsupported platform %q", s))
	err = zerr.With(err, "value", s)
	return PlatformAuto, zerr.With(err, "choices", strings.Join(platformNames(), ", "))
}

// IsAuto reports whether the platform is left to the build tools.
func (p Platform) IsAuto() bool {
	return p == PlatformAuto
}

func (p Platform) String() string {
	return string(p)
}

func platformNames() []string {
	platforms := Platforms()
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return names
}
