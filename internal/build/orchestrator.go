// Package build runs the packaging pipeline: a fixed sequence of stages
// with early exit on fatal errors and guaranteed final cleanup. Every
// external tool invocation is attempted exactly once; there are no retries.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/vsixbuilder/internal/artifacts"
	"git.home.luguber.info/inful/vsixbuilder/internal/config"
	"git.home.luguber.info/inful/vsixbuilder/internal/gitinfo"
	"git.home.luguber.info/inful/vsixbuilder/internal/history"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
	"git.home.luguber.info/inful/vsixbuilder/internal/prompt"
	"git.home.luguber.info/inful/vsixbuilder/internal/toolchain"
)

// Options are per-run knobs.
type Options struct {
	// KeepBuild leaves the artifact directories in place after the run.
	KeepBuild bool
}

// Orchestrator drives a packaging run.
type Orchestrator struct {
	cfg       *config.Config
	toolchain *toolchain.Toolchain
	decider   prompt.Decider
	store     *history.Store // nil disables run recording
}

// New creates an orchestrator. store may be nil.
func New(cfg *config.Config, tc *toolchain.Toolchain, decider prompt.Decider, store *history.Store) *Orchestrator {
	return &Orchestrator{cfg: cfg, toolchain: tc, decider: decider, store: store}
}

// stageList returns the canonical stage sequence.
func stageList() []StageDef {
	return []StageDef{
		{Name: StagePrerequisites, Fn: stagePrerequisites},
		{Name: StageClean, Fn: stageClean},
		{Name: StageVersion, Fn: stageVersion},
		{Name: StageEntrypoint, Fn: stageEntrypoint},
		{Name: StageInstall, Fn: stageInstall},
		{Name: StageCompile, Fn: stageCompile},
		{Name: StageTest, Fn: stageTest},
		{Name: StagePackage, Fn: stagePackage},
		{Name: StagePrune, Fn: stagePrune},
		{Name: StageReport, Fn: stageReport},
	}
}

// Run executes the pipeline. The returned report is always non-nil; the
// error is the first fatal (or cancellation) stage error, if any. Final
// cleanup of the artifact set runs on every exit path unless opted out.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*BuildReport, error) {
	report := newBuildReport(uuid.NewString())

	bs := &BuildState{
		Config:    o.cfg,
		Toolchain: o.toolchain,
		Decider:   o.decider,
		Report:    report,
	}

	// Build provenance, best effort.
	if info, err := gitinfo.Describe(o.cfg.ExtensionDir); err == nil {
		report.Commit = info.Commit
		report.Dirty = info.Dirty
	} else {
		slog.Debug("No git provenance available", logfields.Error(err))
	}

	defer o.finalCleanup(opts)

	err := runStages(ctx, bs, stageList())
	report.finalize(err)

	slog.Info("Build finished",
		logfields.RunID(report.RunID),
		logfields.Outcome(string(report.Outcome)),
		logfields.DurationMS(float64(report.Duration().Milliseconds())))

	o.recordRun(report)
	return report, err
}

// finalCleanup removes the artifact set again unless the caller opted out.
// Runs via defer so it executes regardless of how the pipeline ended.
func (o *Orchestrator) finalCleanup(opts Options) {
	if opts.KeepBuild {
		fmt.Println("Keeping build outputs (per --keep-build)")
		return
	}
	fmt.Println("Final cleanup: removing temporary build folders...")
	artifacts.CleanDirs(o.cfg.ExtensionDir, o.cfg.Artifacts.CleanDirs)
}

// recordRun persists the run in the history store. Uses a fresh context so
// an interrupted build still gets its row; failures are advisory.
func (o *Orchestrator) recordRun(report *BuildReport) {
	if o.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	run := history.Run{
		ID:          report.RunID,
		StartedAt:   report.Start,
		Duration:    report.Duration(),
		Version:     report.Version,
		Outcome:     string(report.Outcome),
		Archive:     report.Archive,
		ArchiveSize: report.ArchiveSize,
		Commit:      report.Commit,
		Dirty:       report.Dirty,
	}
	if err := o.store.Record(ctx, run); err != nil {
		slog.Warn("Failed to record build history", logfields.RunID(report.RunID), logfields.Error(err))
	}
}
