package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Arch is a CPU instruction-set family.
type Arch string

// ArchAuto leaves the architecture to the extension build tool.
const ArchAuto Arch = ""

// Supported architectures.
const (
	ArchUniversal Arch = "universal"
	ArchX86_32    Arch = "x86_32"
	ArchX86_64    Arch = "x86_64"
	ArchARM32     Arch = "arm32"
	ArchARM64     Arch = "arm64"
	ArchRV64      Arch = "rv64"
	ArchPPC32     Arch = "ppc32"
	ArchPPC64     Arch = "ppc64"
	ArchWasm32    Arch = "wasm32"
)

// Archs returns the supported architectures in display order.
func Archs() []Arch {
	return []Arch{
		ArchUniversal,
		ArchX86_32,
		ArchX86_64,
		ArchARM32,
		ArchARM64,
		ArchRV64,
		ArchPPC32,
		ArchPPC64,
		ArchWasm32,
	}
}

// ParseArch validates s against the supported architectures.
// An empty string yields ArchAuto.
func ParseArch(s string) (Arch, error) {
	if s == "" {
		return ArchAuto, nil
	}
	names := make([]string, 0, len(Archs()))
	for _, a := range Archs() {
		if string(a) == s {
			return a, nil
		}
		names = append(names, string(a))
	}
	err := zerr.Wrap(ErrInvalidArch, fmt.Sprintf("unsupported architecture %q", s))
	err = zerr.With(err, "value", s)
	return ArchAuto, zerr.With(err, "choices", strings.Join(names, ", "))
}

// IsAuto reports whether the architecture is left to the build tool.
func (a Arch) IsAuto() bool {
	return a == ArchAuto
}

func (a Arch) String() string {
	return string(a)
}
