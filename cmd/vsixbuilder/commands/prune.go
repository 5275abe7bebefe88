package commands

import (
	"fmt"

	"git.home.luguber.info/inful/vsixbuilder/internal/artifacts"
)

// PruneCmd implements the 'prune' command.
type PruneCmd struct {
	Dir  string `short:"d" help:"Extension directory (overrides extension_dir from config)"`
	Keep int    `short:"k" help:"How many archives to keep (overrides config)" default:"-1"`
}

func (p *PruneCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, p.Dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	keep := cfg.Artifacts.KeepLatest
	if p.Keep >= 0 {
		keep = p.Keep
	}

	fmt.Printf("Pruning %s archives, keeping %d...\n", cfg.Package.Extension, keep)
	return artifacts.Prune(cfg.ExtensionDir, cfg.Package.Extension, keep)
}
