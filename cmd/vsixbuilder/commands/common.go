package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/vsixbuilder/internal/config"
	"git.home.luguber.info/inful/vsixbuilder/internal/history"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
	"git.home.luguber.info/inful/vsixbuilder/internal/toolchain"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"vsixbuilder.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build and package the extension as a VSIX archive"`
	Bump    BumpCmd    `cmd:"" help:"Bump the manifest version without building"`
	Clean   CleanCmd   `cmd:"" help:"Remove build output directories"`
	Prune   PruneCmd   `cmd:"" help:"Delete old VSIX archives, keeping the newest"`
	Watch   WatchCmd   `cmd:"" help:"Watch sources and recompile on change"`
	History HistoryCmd `cmd:"" help:"Show recent build runs"`
	Init    InitCmd    `cmd:"" help:"Initialize a configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration file and applies the per-command
// directory override. An empty dir means the flag was not given, so the
// file's extension_dir (or its default) stays in effect.
func loadConfig(root *CLI, dir string) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if dir != "" {
		cfg.ExtensionDir = dir
	}
	return cfg, nil
}

// newToolchain builds the external toolchain from the configured binary names.
func newToolchain(cfg *config.Config) *toolchain.Toolchain {
	return toolchain.New(cfg.Tools.Node, cfg.Tools.Npm, cfg.Tools.Vsce)
}

// openHistory opens the run ledger. History is advisory: a store that cannot
// be opened disables recording rather than failing the command.
func openHistory(cfg *config.Config) *history.Store {
	if !cfg.HistoryEnabled() {
		return nil
	}
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		slog.Warn("Build history unavailable", logfields.Path(cfg.HistoryPath()), logfields.Error(err))
		return nil
	}
	return store
}
