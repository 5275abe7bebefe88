package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/vsixbuilder/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Dir     string   `short:"d" help:"Extension directory (overrides extension_dir from config)"`
	Sources []string `short:"s" help:"Source directories to watch (relative to the extension directory)" default:"src"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, w.Dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return watch.Run(ctx, cfg, newToolchain(cfg), w.Sources)
}
