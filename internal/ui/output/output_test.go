package output_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rivebuild/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("NO_COLOR", "1")
	t.Setenv("CLICOLOR_FORCE", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&buf), "NO_COLOR should win over CLICOLOR_FORCE")

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfile(&buf))

	t.Setenv("CLICOLOR_FORCE", "0")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&buf), "a buffer is not a terminal")

	t.Setenv("CLICOLOR_FORCE", "")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&buf))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))
	assert.False(t, output.IsTerminal(nil))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	// Should default to stdout, we just check it doesn't panic
	out := output.New(nil)
	assert.NotNil(t, out)
}

func TestNewWithProfile(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, termenv.ANSI)

	_, _ = out.WriteString(out.String("ok").Foreground(termenv.ANSIGreen).String())
	assert.Equal(t, "\x1b[32mok\x1b[0m", buf.String())
}

func TestNewRenderer(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := output.NewRenderer(&bytes.Buffer{})
	assert.Equal(t, termenv.Ascii, r.ColorProfile())
	assert.Equal(t, "plain", r.NewStyle().Foreground(lipgloss.Color("1")).Render("plain"))
}
