package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/vsixbuilder/internal/build"
	"git.home.luguber.info/inful/vsixbuilder/internal/prompt"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Dir       string `short:"d" help:"Extension directory to build (overrides extension_dir from config)"`
	KeepBuild bool   `name:"keep-build" help:"Keep dist/out directories after packaging"`
	NoBump    bool   `name:"no-bump" help:"Skip the interactive version update prompt"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, b.Dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Ctrl+C aborts the pipeline between stages and still runs cleanup.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var decider prompt.Decider
	if b.NoBump {
		decider = &prompt.ScriptedDecider{Bump: false}
	} else {
		decider = prompt.NewTerminalDecider(nil, nil)
	}

	store := openHistory(cfg)
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	fmt.Println("============================================================")
	fmt.Println("VS Code Extension VSIX Builder")
	fmt.Println("============================================================")

	o := build.New(cfg, newToolchain(cfg), decider, store)
	report, err := o.Run(ctx, build.Options{KeepBuild: b.KeepBuild})
	report.WriteSummary(os.Stdout)
	if err != nil {
		return err
	}
	return nil
}
