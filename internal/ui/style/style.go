// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette holds the colours used by the CLI.
type Palette struct {
	Muted   lipgloss.Color
	Failure lipgloss.Color
	Warning lipgloss.Color
	Value   lipgloss.Color
}

// DefaultPalette returns the CLI colours. The 4-bit ANSI codes match what
// the engine scripts print so their output blends in.
func DefaultPalette() Palette {
	return Palette{
		Muted:   lipgloss.Color("7"),
		Failure: lipgloss.Color("1"),
		Warning: lipgloss.Color("3"),
		Value:   lipgloss.Color("6"),
	}
}

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
