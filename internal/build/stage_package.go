package build

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
	"git.home.luguber.info/inful/vsixbuilder/internal/manifest"
)

// stagePackage bundles the extension and packages the archive while the
// manifest temporarily points at the bundled entrypoint. The swap is
// restored on every exit path; a failed restore is itself fatal because it
// leaves the manifest in packaging state.
func stagePackage(ctx context.Context, bs *BuildState) (err error) {
	doc, lerr := bs.loadManifest()
	if lerr != nil {
		return newFatalStageError(StagePackage, errors.ManifestUnreadable(bs.Config.ManifestPath(), lerr))
	}

	swap, serr := manifest.SwapEntrypoint(doc, bs.Config.Package.BundledMain)
	if serr != nil {
		return newFatalStageError(StagePackage, serr)
	}
	defer func() {
		if rerr := swap.Restore(); rerr != nil {
			restoreErr := newFatalStageError(StagePackage, fmt.Errorf("restore manifest entrypoint: %w", rerr))
			if err == nil {
				err = restoreErr
			} else {
				// The original failure wins; still surface the stuck manifest.
				slog.Error("Failed to restore manifest entrypoint", logfields.Error(rerr))
			}
		}
	}()

	fmt.Println("Bundling extension...")
	res, berr := bs.Toolchain.RunScript(ctx, bs.Config.ExtensionDir, bs.Config.Scripts.Bundle)
	if berr != nil {
		return newFatalStageError(StagePackage, errors.ToolFailed(bs.Config.Tools.Npm, berr))
	}
	echoOutput(res.Stdout)

	fmt.Printf("Packaging extension as %s\n", bs.ExpectedArchive)
	res, perr := bs.Toolchain.Package(ctx, bs.Config.ExtensionDir, bs.ExpectedArchive, bs.Config.AllowMissingRepository())
	if perr != nil {
		return newFatalStageError(StagePackage, errors.ToolFailed(bs.Config.Tools.Vsce, perr))
	}
	echoOutput(res.Stdout)

	return nil
}
