// Package watch recompiles the extension whenever its sources change. It is
// a development aid: no packaging, no version prompt, just the compile
// script in a loop with debounced filesystem events.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/vsixbuilder/internal/config"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
	"git.home.luguber.info/inful/vsixbuilder/internal/toolchain"
)

// debounceDelay coalesces editor save bursts into one recompile.
const debounceDelay = 300 * time.Millisecond

// Run watches the source directories and recompiles on change until ctx is
// canceled. An initial compile runs before watching starts.
func Run(ctx context.Context, cfg *config.Config, tc *toolchain.Toolchain, sources []string) error {
	dirs := resolveSourceDirs(cfg, sources)
	if len(dirs) == 0 {
		return fmt.Errorf("no watchable source directories found under %s", cfg.ExtensionDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range dirs {
		if err := addDirsRecursive(watcher, dir); err != nil {
			return err
		}
		slog.Info("Watching for changes", logfields.Path(dir))
	}

	compileReq, trigger := newDebouncer()
	startCompileWorker(ctx, cfg, tc, compileReq)

	compile(ctx, cfg, tc)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// resolveSourceDirs returns the existing directories to watch. When none of
// the requested sources exist the extension root itself is used.
func resolveSourceDirs(cfg *config.Config, sources []string) []string {
	if len(sources) == 0 {
		sources = []string{"src"}
	}

	var dirs []string
	for _, s := range sources {
		path := s
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.ExtensionDir, s)
		}
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			dirs = append(dirs, path)
		}
	}
	if len(dirs) == 0 {
		if fi, err := os.Stat(cfg.ExtensionDir); err == nil && fi.IsDir() {
			dirs = append(dirs, cfg.ExtensionDir)
		}
	}
	return dirs
}

// newDebouncer returns a request channel and a trigger that enqueues one
// compile after a quiet period.
func newDebouncer() (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	compileReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceDelay, func() {
			select {
			case compileReq <- struct{}{}:
			default:
			}
		})
	}

	return compileReq, trigger
}

// startCompileWorker drains compile requests one at a time. A request that
// arrives mid-compile is remembered and serviced immediately afterwards.
func startCompileWorker(ctx context.Context, cfg *config.Config, tc *toolchain.Toolchain, compileReq chan struct{}) {
	var mu sync.Mutex
	running := false
	pending := false

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-compileReq:
				if !ok {
					return
				}
				mu.Lock()
				if running {
					pending = true
					mu.Unlock()
					continue
				}
				running = true
				mu.Unlock()

				compile(ctx, cfg, tc)

				mu.Lock()
				running = false
				if pending {
					pending = false
					mu.Unlock()
					select {
					case compileReq <- struct{}{}:
					default:
					}
				} else {
					mu.Unlock()
				}
			}
		}
	}()
}

// compile runs the compile script once; failures are reported, not fatal.
func compile(ctx context.Context, cfg *config.Config, tc *toolchain.Toolchain) {
	if ctx.Err() != nil {
		return
	}
	fmt.Println("Compiling...")
	start := time.Now()
	if _, err := tc.RunScript(ctx, cfg.ExtensionDir, cfg.Scripts.Compile); err != nil {
		slog.Error("Compile failed", logfields.Error(err))
		fmt.Printf("Compile failed: %v\n", err)
		return
	}
	fmt.Printf("Compile OK (%s)\n", time.Since(start).Round(time.Millisecond))
}

// handleEvent filters noise and arms the debouncer. New directories are added
// to the watch set so nested source trees stay covered.
func handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), "op", ev.Op.String())
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if skipDir(filepath.Base(path)) && path != root {
				return filepath.SkipDir
			}
			if err := w.Add(path); err != nil {
				slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// skipDir names directories never worth watching.
func skipDir(name string) bool {
	return name == "node_modules" || name == "dist" || name == "out" ||
		(strings.HasPrefix(name, ".") && name != ".")
}

// shouldIgnoreEvent returns true for filesystem events that should not
// trigger a recompile.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	if base == "Thumbs.db" {
		return true
	}
	return false
}
