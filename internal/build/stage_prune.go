package build

import (
	"context"

	"git.home.luguber.info/inful/vsixbuilder/internal/artifacts"
)

// stagePrune removes all but the most recent archives. Individual deletion
// failures were already logged by the artifacts package; only a listing
// failure is surfaced, and even that does not abort the run.
func stagePrune(_ context.Context, bs *BuildState) error {
	err := artifacts.Prune(bs.Config.ExtensionDir, bs.Config.Package.Extension, bs.Config.Artifacts.KeepLatest)
	if err != nil {
		return newWarnStageError(StagePrune, err)
	}
	return nil
}
