package build

import (
	"context"
	"fmt"
	"os"

	"git.home.luguber.info/inful/vsixbuilder/internal/artifacts"
)

// stageReport locates the produced archive and records it in the report.
// The expected filename is recomputed from build state, so a packaging
// failure earlier can never leave this stage reading an unset path.
func stageReport(_ context.Context, bs *BuildState) error {
	if bs.ExpectedArchive == "" {
		return newFatalStageError(StageReport, fmt.Errorf("no expected archive name captured"))
	}

	path := artifacts.Find(bs.Config.ExtensionDir, bs.Config.Package.Extension, bs.ExpectedArchive)
	if path == "" {
		return newFatalStageError(StageReport, fmt.Errorf("build completed but archive not found"))
	}

	fi, err := os.Stat(path)
	if err != nil {
		return newFatalStageError(StageReport, fmt.Errorf("stat archive: %w", err))
	}

	bs.Report.Archive = path
	bs.Report.ArchiveSize = fi.Size()
	return nil
}
