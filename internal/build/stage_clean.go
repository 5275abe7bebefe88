package build

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/vsixbuilder/internal/artifacts"
)

// stageClean removes stale build output before the run. Deletion errors are
// swallowed; this stage always succeeds.
func stageClean(_ context.Context, bs *BuildState) error {
	fmt.Println("Cleaning build artifacts...")
	artifacts.CleanDirs(bs.Config.ExtensionDir, bs.Config.Artifacts.CleanDirs)
	return nil
}
