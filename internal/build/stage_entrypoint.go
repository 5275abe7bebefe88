package build

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
)

// stageEntrypoint captures the dev-time main entry and the identity the
// archive will be named after. Without a main field the run cannot restore
// state later, so its absence is fatal.
func stageEntrypoint(_ context.Context, bs *BuildState) error {
	doc, err := bs.loadManifest()
	if err != nil {
		return newFatalStageError(StageEntrypoint, errors.ManifestUnreadable(bs.Config.ManifestPath(), err))
	}

	main, ok := doc.Main()
	if !ok || main == "" {
		return newFatalStageError(StageEntrypoint, errors.ManifestFieldMissing("main"))
	}
	bs.DevMain = main

	if name, ok := doc.Name(); ok && name != "" {
		bs.ExtensionName = name
	} else {
		bs.ExtensionName = fallbackExtensionName
	}

	if version, ok := doc.Version(); ok && version != "" {
		bs.Version = version
	} else {
		bs.Version = "0.0.0"
	}
	bs.Report.Version = bs.Version

	bs.ExpectedArchive = fmt.Sprintf("%s-%s.%s", bs.ExtensionName, bs.Version, bs.Config.Package.Extension)
	slog.Info("Building version", logfields.Version(bs.Version), logfields.Archive(bs.ExpectedArchive))
	return nil
}
