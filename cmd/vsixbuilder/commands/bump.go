package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/vsixbuilder/internal/badge"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
	"git.home.luguber.info/inful/vsixbuilder/internal/manifest"
	"git.home.luguber.info/inful/vsixbuilder/internal/semver"
)

// BumpCmd implements the 'bump' command: a non-interactive version bump for
// scripts and CI.
type BumpCmd struct {
	Part string `arg:"" optional:"" enum:"patch,minor,major" help:"Version part to increment (patch, minor, major)" default:"patch"`
	Dir  string `short:"d" help:"Extension directory (overrides extension_dir from config)"`
}

func (b *BumpCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, b.Dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	part, err := semver.ParsePart(b.Part)
	if err != nil {
		return err
	}

	doc, err := manifest.Load(cfg.ManifestPath())
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	current, ok := doc.Version()
	if !ok {
		return fmt.Errorf("manifest %s has no version field", cfg.ManifestPath())
	}
	parsed, err := semver.Parse(current)
	if err != nil {
		return fmt.Errorf("current version is not semantic: %w", err)
	}

	next := parsed.Bump(part)
	if err := doc.SetVersion(next.String()); err != nil {
		return err
	}
	if err := doc.Save(); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if changed, err := badge.UpdateVersion(cfg.ReadmePath(), next.String()); err != nil {
		slog.Warn("Failed to update version badge", logfields.Path(cfg.ReadmePath()), logfields.Error(err))
	} else if changed {
		slog.Info("README version badge updated", logfields.Version(next.String()))
	}

	fmt.Printf("Version updated: %s -> %s\n", current, next)
	return nil
}
