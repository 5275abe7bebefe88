package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
)

// CommandResult carries the captured output of a finished command.
type CommandResult struct {
	Stdout string
	Stderr string
}

// Runner abstracts subprocess execution so the pipeline can be exercised in
// tests without a Node toolchain present.
type Runner interface {
	// LookPath reports whether the named tool is invokable.
	LookPath(name string) (string, error)
	// Run executes the tool in dir (empty means inherit the process cwd)
	// and returns captured output. A non-zero exit status is an error
	// whose message includes the captured output.
	Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner returns the real process runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// platformName maps tool names to their Windows launcher variants. npm and
// vsce are .cmd shims there and cannot be spawned under their bare names.
func platformName(name string) string {
	if runtime.GOOS != "windows" {
		return name
	}
	switch name {
	case "npm", "vsce":
		return name + ".cmd"
	}
	return name
}

// LookPath resolves the tool on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(platformName(name))
}

// Run executes the command, capturing stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, platformName(name), args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Running external tool", logfields.Tool(name), "args", strings.Join(args, " "))

	err := cmd.Run()
	res := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return res, &CommandError{
			Tool:   name,
			Args:   args,
			Err:    err,
			Result: res,
		}
	}
	return res, nil
}

// CommandError describes a failed tool invocation including captured output
// so the failure can be surfaced verbatim to the user.
type CommandError struct {
	Tool   string
	Args   []string
	Err    error
	Result CommandResult
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Result.Stdout); out != "" {
		msg += "\noutput: " + out
	}
	if errOut := strings.TrimSpace(e.Result.Stderr); errOut != "" {
		msg += "\nerror: " + errOut
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }
