package manifest

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
)

// EntrypointSwap temporarily redirects the manifest's main field at the
// bundled output while packaging runs. Acquire with SwapEntrypoint, release
// with a deferred Restore so the original value comes back on every exit
// path, including panics.
type EntrypointSwap struct {
	doc      *Document
	original string
	restored bool
}

// SwapEntrypoint records the current main value, rewrites it to bundledPath
// and persists the manifest. The returned swap must be Restored by the
// caller, normally via defer.
func SwapEntrypoint(doc *Document, bundledPath string) (*EntrypointSwap, error) {
	original, ok := doc.Main()
	if !ok {
		return nil, fmt.Errorf("manifest has no main field to swap")
	}

	if original != bundledPath {
		if err := doc.SetMain(bundledPath); err != nil {
			return nil, err
		}
		if err := doc.Save(); err != nil {
			return nil, fmt.Errorf("persist entrypoint swap: %w", err)
		}
	}

	slog.Debug("Swapped manifest entrypoint", logfields.Path(bundledPath))
	return &EntrypointSwap{doc: doc, original: original}, nil
}

// Restore puts the original main value back and persists the manifest.
// Safe to call more than once; only the first call writes.
func (s *EntrypointSwap) Restore() error {
	if s == nil || s.restored {
		return nil
	}
	s.restored = true

	current, _ := s.doc.Main()
	if current == s.original {
		return nil
	}
	if err := s.doc.SetMain(s.original); err != nil {
		return err
	}
	if err := s.doc.Save(); err != nil {
		return fmt.Errorf("restore entrypoint: %w", err)
	}
	slog.Debug("Restored manifest entrypoint", logfields.Path(s.original))
	return nil
}
