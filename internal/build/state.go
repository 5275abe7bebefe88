package build

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/vsixbuilder/internal/config"
	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
	"git.home.luguber.info/inful/vsixbuilder/internal/manifest"
	"git.home.luguber.info/inful/vsixbuilder/internal/prompt"
	"git.home.luguber.info/inful/vsixbuilder/internal/toolchain"
)

// BuildState carries mutable state across stages.
type BuildState struct {
	Config    *config.Config
	Toolchain *toolchain.Toolchain
	Decider   prompt.Decider

	Manifest *manifest.Document // loaded lazily by the first stage that needs it

	ExtensionName   string // manifest name, "extension" when absent
	Version         string // version being built
	DevMain         string // original main entrypoint, restored after packaging
	ExpectedArchive string // <name>-<version>.<ext>, set before packaging

	Report *BuildReport
}

// fallbackExtensionName is used when the manifest carries no name field.
const fallbackExtensionName = "extension"

// loadManifest loads the manifest on first use. Subsequent calls return the
// cached document so in-memory edits (version bump, entrypoint swap) stay
// visible to later stages.
func (bs *BuildState) loadManifest() (*manifest.Document, error) {
	if bs.Manifest != nil {
		return bs.Manifest, nil
	}
	doc, err := manifest.Load(bs.Config.ManifestPath())
	if err != nil {
		return nil, err
	}
	bs.Manifest = doc
	return doc, nil
}

// runStages executes stages in order, recording timing and stopping on first
// fatal error. Warnings are recorded and execution continues.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := newCanceledStageError(st.Name, ctx.Err())
			bs.Report.Errors = append(bs.Report.Errors, se)
			bs.Report.StageErrorKinds[st.Name] = se.Kind
			return se
		default:
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[st.Name] = dur
		slog.Debug("Stage finished",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Milliseconds())),
			logfields.Error(err))

		if err == nil {
			continue
		}

		var se *StageError
		if !stderrors.As(err, &se) {
			// Wrap unknown errors as fatal by default.
			se = newFatalStageError(st.Name, errors.BuildFailed(string(st.Name), err))
		}
		bs.Report.StageErrorKinds[st.Name] = se.Kind

		switch se.Kind {
		case StageErrorWarning:
			bs.Report.Warnings = append(bs.Report.Warnings, se)
			slog.Warn("Stage completed with warning", logfields.Stage(string(st.Name)), logfields.Error(se.Err))
			continue
		default:
			bs.Report.Errors = append(bs.Report.Errors, se)
			return se
		}
	}
	return nil
}
