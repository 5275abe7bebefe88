package commands

import (
	"fmt"

	"git.home.luguber.info/inful/vsixbuilder/internal/artifacts"
)

// CleanCmd implements the 'clean' command.
type CleanCmd struct {
	Dir string `short:"d" help:"Extension directory (overrides extension_dir from config)"`
}

func (c *CleanCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, c.Dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Println("Cleaning build artifacts...")
	artifacts.CleanDirs(cfg.ExtensionDir, cfg.Artifacts.CleanDirs)
	return nil
}
