// Package gitinfo reads repository state for build provenance. Everything
// here is best effort: an extension tree outside a git checkout is valid,
// and callers treat failures as advisory.
package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Info captures the repository state a build ran against.
type Info struct {
	Commit string
	Branch string
	Dirty  bool
}

// Describe reads HEAD and worktree status for the repository containing dir.
func Describe(dir string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	info := &Info{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	// Status can be slow on very large trees but extension checkouts are
	// small; a failure only costs the dirty flag.
	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.Dirty = !status.IsClean()
		}
	}

	return info, nil
}
