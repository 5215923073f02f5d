// Package linear provides a synchronous, line based build reporter.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/rivebuild/internal/ui/output"
	"go.trai.ch/rivebuild/internal/ui/style"
)

// Reporter implements ports.Reporter.
//
// It writes to the stream the build processes inherit, so step banners and
// tool output interleave in order. After a step banner the terminal is left
// in a dim colour for the tool output and reset when the step completes.
type Reporter struct {
	mu      sync.Mutex
	output  *termenv.Output
	palette style.Palette
}

// NewReporter creates a Reporter writing to w, picking colours from the environment.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		output:  output.New(w),
		palette: style.DefaultPalette(),
	}
}

// NewReporterWithProfile creates a Reporter with a fixed colour profile.
func NewReporterWithProfile(w io.Writer, profile termenv.Profile) *Reporter {
	return &Reporter{
		output:  output.NewWithProfile(w, profile),
		palette: style.DefaultPalette(),
	}
}

// SetOutput redirects the reporter to w, picking colours for the new stream.
func (r *Reporter) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.output = output.New(w)
}

// OnStepStart prints the step banner and its fields.
func (r *Reporter) OnStepStart(step *domain.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.write("\n" + r.bold(step.Title) + "\n")
	for _, f := range step.Fields {
		value := r.output.String(f.Value).Foreground(r.color(r.palette.Value)).String()
		r.write(r.bold(f.Label+":") + " " + value + "\n")
	}
	r.write("---" + r.sequence(r.palette.Muted) + "\n")
}

// OnActionSkip prints the skip notice of a guarded action.
func (r *Reporter) OnActionSkip(action *domain.Action) {
	if action.SkipNotice == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(action.SkipNotice + "\n")
}

// OnDryRun prints the command that would run.
func (r *Reporter) OnDryRun(cmd *domain.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := "$ " + cmd.String()
	if cmd.Dir != "" {
		line = "$ cd " + cmd.Dir + " && " + cmd.String()
	}
	r.write(line + "\n")
}

// OnStepComplete restores the terminal colour and prints the step result.
func (r *Reporter) OnStepComplete(_ *domain.Step, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.write(r.reset())
	if err == nil {
		r.write("\n")
		return
	}

	msg := fmt.Sprintf("Exited with error: %d", domain.ExitCode(err))
	if domain.ExitCode(err) == 0 {
		msg = "Failed: " + err.Error()
	}
	red := r.output.String(msg).Foreground(r.color(r.palette.Failure)).String()
	r.write(red + "\n\n")
}

// OnBuildComplete prints the final banner.
func (r *Reporter) OnBuildComplete(succeeded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if succeeded {
		r.write(r.bold("Build successful!") + "\n\n")
		return
	}
	failed := r.output.String("Build failed!").Bold().Foreground(r.color(r.palette.Failure)).String()
	r.write(failed + "\n\n")
}

func (r *Reporter) bold(s string) string {
	return r.output.String(s).Bold().String()
}

func (r *Reporter) color(c lipgloss.Color) termenv.Color {
	return r.output.Color(string(c))
}

// sequence returns the raw escape sequence switching to colour c, or nothing
// when colour is disabled.
func (r *Reporter) sequence(c lipgloss.Color) string {
	color := r.color(c)
	if color == nil {
		return ""
	}
	seq := color.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func (r *Reporter) reset() string {
	if r.output.Profile == termenv.Ascii {
		return ""
	}
	return termenv.CSI + termenv.ResetSeq + "m"
}

func (r *Reporter) write(s string) {
	_, _ = r.output.WriteString(s)
}
