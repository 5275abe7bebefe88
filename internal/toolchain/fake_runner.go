package toolchain

import (
	"context"
	"strings"
)

// FakeCall records one Run invocation on a FakeRunner.
type FakeCall struct {
	Dir  string
	Name string
	Args []string
}

// CommandLine renders the call the way Results/Errors keys are written.
func (c FakeCall) CommandLine() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// FakeRunner is a scripted Runner used by pipeline and toolchain tests.
// Results and Errors are keyed by the full command line ("npm run compile").
type FakeRunner struct {
	// MissingTools marks tool names LookPath should report as absent.
	MissingTools map[string]bool
	// Results maps command lines to canned output.
	Results map[string]CommandResult
	// Errors maps command lines to injected failures.
	Errors map[string]error
	// OnRun, when set, observes every call before the scripted response is
	// returned. Tests use it to flip MissingTools after an install.
	OnRun func(call FakeCall)

	Calls []FakeCall
}

// LookPath reports scripted tool presence.
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.MissingTools[name] {
		return "", &toolMissingError{name: name}
	}
	return "/usr/bin/" + name, nil
}

// Run records the call and returns the scripted response.
func (f *FakeRunner) Run(_ context.Context, dir, name string, args ...string) (CommandResult, error) {
	call := FakeCall{Dir: dir, Name: name, Args: args}
	f.Calls = append(f.Calls, call)
	if f.OnRun != nil {
		f.OnRun(call)
	}

	key := call.CommandLine()
	if err, ok := f.Errors[key]; ok {
		return f.Results[key], err
	}
	return f.Results[key], nil
}

// CommandLines returns every recorded call rendered as a command line.
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.CommandLine())
	}
	return lines
}

type toolMissingError struct{ name string }

func (e *toolMissingError) Error() string { return "executable file not found in $PATH: " + e.name }
