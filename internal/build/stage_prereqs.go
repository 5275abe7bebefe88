package build

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
)

// stagePrerequisites verifies the external toolchain is present. The
// packaging tool gets one global install attempt; the runtime and package
// manager must already be there.
func stagePrerequisites(ctx context.Context, bs *BuildState) error {
	fmt.Println("Checking prerequisites...")

	nodeVersion, err := bs.Toolchain.NodeVersion(ctx)
	if err != nil {
		return newFatalStageError(StagePrerequisites, errors.ToolNotFound(bs.Config.Tools.Node, err))
	}
	slog.Info("Found Node.js", "version", nodeVersion)

	npmVersion, err := bs.Toolchain.NpmVersion(ctx)
	if err != nil {
		return newFatalStageError(StagePrerequisites, errors.ToolNotFound(bs.Config.Tools.Npm, err))
	}
	slog.Info("Found npm", "version", npmVersion)

	vsceVersion, err := bs.Toolchain.EnsureVsce(ctx)
	if err != nil {
		return newFatalStageError(StagePrerequisites, errors.ToolNotFound(bs.Config.Tools.Vsce, err))
	}
	slog.Info("Found vsce", "version", vsceVersion)

	return nil
}
