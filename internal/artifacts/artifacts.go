// Package artifacts manages disposable build output: the artifact set of
// directories created by the toolchain, and the packaged archives kept in
// the extension directory.
package artifacts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
	"git.home.luguber.info/inful/vsixbuilder/internal/logfields"
)

// CleanDirs removes the artifact directories under root. Deletion errors are
// logged and swallowed; cleanup is always considered successful.
func CleanDirs(root string, dirs []string) {
	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		slog.Info("Removing build artifacts", logfields.Path(path))
		if err := os.RemoveAll(path); err != nil {
			slog.Warn("Failed to remove artifact directory", logfields.Path(path), logfields.Error(err))
		}
	}
}

// archiveInfo pairs an archive path with its modification time for sorting.
type archiveInfo struct {
	path    string
	modTime int64
}

// listArchives returns all "*.<ext>" files in dir sorted newest first.
func listArchives(dir, ext string) ([]archiveInfo, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*."+ext))
	if err != nil {
		return nil, fmt.Errorf("glob archives: %w", err)
	}

	infos := make([]archiveInfo, 0, len(matches))
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || fi.IsDir() {
			continue
		}
		infos = append(infos, archiveInfo{path: m, modTime: fi.ModTime().UnixNano()})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].modTime > infos[j].modTime })
	return infos, nil
}

// Prune deletes all but the keep most recently modified archives in dir.
// Individual deletion failures are logged, not returned.
func Prune(dir, ext string, keep int) error {
	if keep < 0 {
		keep = 0
	}
	infos, err := listArchives(dir, ext)
	if err != nil {
		return errors.ArtifactError("prune", err)
	}

	for _, old := range infos[min(keep, len(infos)):] {
		slog.Info("Removing older archive", logfields.Archive(filepath.Base(old.path)))
		if err := os.Remove(old.path); err != nil {
			slog.Warn("Unable to remove archive", logfields.Archive(filepath.Base(old.path)), logfields.Error(err))
		}
	}
	return nil
}

// Find locates the produced archive, preferring the exact preferred filename
// and falling back to the most recently modified archive in dir. Returns an
// empty string when nothing matches.
func Find(dir, ext, preferred string) string {
	if preferred != "" {
		p := filepath.Join(dir, preferred)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}

	infos, err := listArchives(dir, ext)
	if err != nil || len(infos) == 0 {
		return ""
	}
	return infos[0].path
}
