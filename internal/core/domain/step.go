package domain

import (
	"slices"
	"strings"
)

// Command is a single external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the process. Empty means the caller's
	// working directory.
	Dir string
}

// Argv returns the full argument vector, program name first.
func (c *Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command line the way a shell user would type it.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, arg := range c.Argv() {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.ContainsAny(s, " \t\n\"'\\$`*?[]{}()<>|&;#~") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

// Guard makes an action unnecessary once all of its outputs exist under Root.
type Guard struct {
	Root    string
	Outputs []string
}

// Action is one command within a step.
type Action struct {
	Command Command
	// Guard, when set, skips the command if its outputs are already present.
	Guard *Guard
	// SkipNotice is printed when the guard skips the command.
	SkipNotice string
	// Optional actions report their failure but never fail the step.
	Optional bool
}

// Field is a label/value pair shown in a step's summary.
type Field struct {
	Label string
	Value string
}

// Step is a named group of actions run in order. The first failing
// non-optional action ends the step.
type Step struct {
	Name    string
	Title   string
	Fields  []Field
	Actions []Action
}

// StepStatus is the state of a step within a build.
type StepStatus string

const (
	// StatusPending indicates the step has not run yet.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is executing.
	StatusRunning StepStatus = "Running"
	// StatusCompleted indicates every required action of the step succeeded.
	StatusCompleted StepStatus = "Completed"
	// StatusFailed indicates a required action of the step failed.
	StatusFailed StepStatus = "Failed"
	// StatusSkipped indicates the step was not run because an earlier step failed.
	StatusSkipped StepStatus = "Skipped"
)

// StepResult records the outcome of a step.
type StepResult struct {
	Step   string
	Status StepStatus
	Err    error
}

// BuildResult records the outcome of a whole build.
type BuildResult struct {
	Steps []StepResult
}

// Failed returns the results of the steps that failed.
func (r *BuildResult) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Ran returns the names of the steps that ran to completion or failure.
func (r *BuildResult) Ran() []string {
	var names []string
	for _, s := range r.Steps {
		if s.Status == StatusCompleted || s.Status == StatusFailed {
			names = append(names, s.Step)
		}
	}
	return slices.Clip(names)
}
