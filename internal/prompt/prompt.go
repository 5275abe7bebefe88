// Package prompt isolates interactive decisions behind the Decider
// interface so the pipeline can run against scripted answers in tests and
// non-interactive environments.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git.home.luguber.info/inful/vsixbuilder/internal/semver"
)

// Decider answers the questions the version step asks.
type Decider interface {
	// ConfirmBump asks whether the version should be bumped at all.
	ConfirmBump(current string) (bool, error)
	// ChooseBump asks which part of the version to increment.
	ChooseBump(current semver.Version) (semver.Part, error)
}

// TerminalDecider prompts on the terminal.
type TerminalDecider struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalDecider creates a decider reading from in and prompting on out.
// Nil arguments default to stdin/stdout.
func NewTerminalDecider(in io.Reader, out io.Writer) *TerminalDecider {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &TerminalDecider{in: bufio.NewReader(in), out: out}
}

func (d *TerminalDecider) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// ConfirmBump implements Decider. Empty input defaults to yes; only an
// explicit "n"/"no" declines.
func (d *TerminalDecider) ConfirmBump(current string) (bool, error) {
	fmt.Fprintf(d.out, "Current version: %s\n", current)
	fmt.Fprint(d.out, "Would you like to update the version before building? [Y/n]: ")

	answer, err := d.readLine()
	if err != nil {
		return false, err
	}
	return answer != "n" && answer != "no", nil
}

// ChooseBump implements Decider, re-prompting until a valid selection is
// entered. Empty input selects patch.
func (d *TerminalDecider) ChooseBump(current semver.Version) (semver.Part, error) {
	fmt.Fprintln(d.out, "\nSelect version increment:")
	fmt.Fprintf(d.out, "  1. Patch (bug fixes):        %s -> %s [default]\n", current, current.Bump(semver.PartPatch))
	fmt.Fprintf(d.out, "  2. Minor (new features):     %s -> %s\n", current, current.Bump(semver.PartMinor))
	fmt.Fprintf(d.out, "  3. Major (breaking changes): %s -> %s\n", current, current.Bump(semver.PartMajor))

	for {
		fmt.Fprint(d.out, "\nEnter your choice [1/2/3]: ")
		answer, err := d.readLine()
		if err != nil {
			return "", err
		}
		switch answer {
		case "", "1":
			return semver.PartPatch, nil
		case "2":
			return semver.PartMinor, nil
		case "3":
			return semver.PartMajor, nil
		}
		fmt.Fprintln(d.out, "Invalid selection. Please enter 1, 2, or 3 (or press Enter for 1).")
	}
}

// ScriptedDecider returns fixed answers; used in tests and by the
// non-interactive bump command.
type ScriptedDecider struct {
	Bump bool
	Part semver.Part
}

// ConfirmBump implements Decider.
func (d *ScriptedDecider) ConfirmBump(string) (bool, error) { return d.Bump, nil }

// ChooseBump implements Decider.
func (d *ScriptedDecider) ChooseBump(semver.Version) (semver.Part, error) {
	if d.Part == "" {
		return semver.PartPatch, nil
	}
	return d.Part, nil
}
