package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Example is a usage example shown in the help text.
type Example struct {
	Command     string
	Description string
}

// HelpStyles renders the help description.
type HelpStyles struct {
	Command lipgloss.Style
	Heading lipgloss.Style
	Dim     lipgloss.Style
}

// NewHelpStyles creates the help styles for renderer.
func NewHelpStyles(r *lipgloss.Renderer, p Palette) HelpStyles {
	return HelpStyles{
		Command: r.NewStyle().Foreground(p.Value),
		Heading: r.NewStyle().Bold(true),
		Dim:     r.NewStyle().Foreground(p.Muted),
	}
}

// Description renders the intro lines followed by the examples.
func (s HelpStyles) Description(intro []string, examples []Example) string {
	var b strings.Builder
	for _, line := range intro {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(examples) == 0 {
		return b.String()
	}

	b.WriteByte('\n')
	b.WriteString(s.Heading.Render("Examples:"))
	b.WriteByte('\n')
	for _, ex := range examples {
		b.WriteString(s.Command.Render("  " + ex.Command))
		b.WriteByte('\n')
		b.WriteString(s.Dim.Render("      " + ex.Description))
		b.WriteByte('\n')
	}
	return b.String()
}
