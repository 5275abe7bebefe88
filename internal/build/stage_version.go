package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	stderrors "errors"

	"git.home.luguber.info/inful/vsixbuilder/internal/badge"
	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
	"git.home.luguber.info/inful/vsixbuilder/internal/semver"
)

// stageVersion optionally bumps the manifest version before building. A
// missing manifest or version field skips the step silently; a malformed
// version aborts only this step, never the whole run.
func stageVersion(_ context.Context, bs *BuildState) error {
	doc, err := bs.loadManifest()
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			slog.Warn("Manifest not found, skipping version update prompt", logfields.Path(bs.Config.ManifestPath()))
			return nil
		}
		return newFatalStageError(StageVersion, errors.ManifestUnreadable(bs.Config.ManifestPath(), err))
	}

	current, ok := doc.Version()
	if !ok {
		slog.Warn("Manifest is missing a version field, skipping version update prompt")
		return nil
	}

	bump, err := bs.Decider.ConfirmBump(current)
	if err != nil {
		return newFatalStageError(StageVersion, fmt.Errorf("read bump confirmation: %w", err))
	}
	if !bump {
		return nil
	}

	parsed, err := semver.Parse(current)
	if err != nil {
		return newWarnStageError(StageVersion, fmt.Errorf("unable to parse semantic version, skipping version update: %w", err))
	}

	part, err := bs.Decider.ChooseBump(parsed)
	if err != nil {
		return newFatalStageError(StageVersion, fmt.Errorf("read bump selection: %w", err))
	}

	next := parsed.Bump(part)
	if err := doc.SetVersion(next.String()); err != nil {
		return newFatalStageError(StageVersion, err)
	}
	if err := doc.Save(); err != nil {
		return newFatalStageError(StageVersion, fmt.Errorf("write updated version: %w", err))
	}

	// Badge rewrite is best effort; the build proceeds either way.
	if changed, err := badge.UpdateVersion(bs.Config.ReadmePath(), next.String()); err != nil {
		slog.Warn("Failed to update version badge", logfields.Path(bs.Config.ReadmePath()), logfields.Error(err))
	} else if changed {
		slog.Info("README version badge updated", logfields.Version(next.String()))
	}

	fmt.Printf("Version updated: %s -> %s\n", current, next)
	return nil
}
