// Package toolchain invokes the external Node.js tooling (node, npm, vsce)
// the build depends on. Every invocation is attempted exactly once and
// judged solely by exit status and captured output.
package toolchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
)

// vsce lives on npm; this is the package installed when the binary is absent.
const vscePackage = "@vscode/vsce"

// Toolchain wraps the three external tools behind a Runner.
type Toolchain struct {
	runner Runner
	node   string
	npm    string
	vsce   string
}

// New creates a toolchain using the given binary names and the real
// process runner.
func New(node, npm, vsce string) *Toolchain {
	return NewWithRunner(node, npm, vsce, NewExecRunner())
}

// NewWithRunner creates a toolchain with an injected Runner (for testing).
func NewWithRunner(node, npm, vsce string, runner Runner) *Toolchain {
	return &Toolchain{runner: runner, node: node, npm: npm, vsce: vsce}
}

// toolVersion invokes `<tool> --version` and returns the trimmed output.
func (t *Toolchain) toolVersion(ctx context.Context, name string) (string, error) {
	if _, err := t.runner.LookPath(name); err != nil {
		return "", fmt.Errorf("%s is not installed or not in PATH: %w", name, err)
	}
	res, err := t.runner.Run(ctx, "", name, "--version")
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", name, err)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// NodeVersion verifies the Node.js runtime is invokable.
func (t *Toolchain) NodeVersion(ctx context.Context) (string, error) {
	return t.toolVersion(ctx, t.node)
}

// NpmVersion verifies the package manager is invokable.
func (t *Toolchain) NpmVersion(ctx context.Context) (string, error) {
	return t.toolVersion(ctx, t.npm)
}

// EnsureVsce verifies the packaging tool is invokable, attempting a one-time
// global install when it is missing. Returns the tool version on success.
func (t *Toolchain) EnsureVsce(ctx context.Context) (string, error) {
	if v, err := t.toolVersion(ctx, t.vsce); err == nil {
		return v, nil
	}

	slog.Warn("vsce is not installed, installing globally", logfields.Tool(t.vsce))
	if _, err := t.runner.Run(ctx, "", t.npm, "install", "-g", vscePackage); err != nil {
		return "", fmt.Errorf("install %s: %w", vscePackage, err)
	}

	v, err := t.toolVersion(ctx, t.vsce)
	if err != nil {
		return "", fmt.Errorf("%s still unavailable after install: %w", t.vsce, err)
	}
	return v, nil
}

// Install runs the package manager's install command in dir.
func (t *Toolchain) Install(ctx context.Context, dir string) (CommandResult, error) {
	return t.runner.Run(ctx, dir, t.npm, "install")
}

// RunScript invokes a named manifest script via the package manager.
func (t *Toolchain) RunScript(ctx context.Context, dir, script string) (CommandResult, error) {
	return t.runner.Run(ctx, dir, t.npm, "run", script)
}

// Package invokes vsce to produce the named archive in dir.
func (t *Toolchain) Package(ctx context.Context, dir, outputName string, allowMissingRepository bool) (CommandResult, error) {
	args := []string{"package", "-o", outputName}
	if allowMissingRepository {
		args = append(args, "--allow-missing-repository")
	}
	return t.runner.Run(ctx, dir, t.vsce, args...)
}
