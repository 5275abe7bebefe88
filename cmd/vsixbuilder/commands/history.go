package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"git.home.luguber.info/inful/vsixbuilder/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Dir   string `short:"d" help:"Extension directory (overrides extension_dir from config)"`
	Limit int    `short:"n" help:"Maximum number of runs to show" default:"10"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, h.Dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.HistoryEnabled() {
		return fmt.Errorf("build history is disabled in configuration")
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded builds yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tVERSION\tOUTCOME\tDURATION\tARCHIVE\tCOMMIT")
	for _, r := range runs {
		commit := r.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		if r.Dirty {
			commit += "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.StartedAt.Format(time.DateTime), r.Version, r.Outcome,
			r.Duration.Round(time.Millisecond), r.Archive, commit)
	}
	return w.Flush()
}
