package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("package.json")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestDescribeCleanRepo(t *testing.T) {
	dir := initRepo(t)

	info, err := Describe(dir)
	require.NoError(t, err)
	require.Len(t, info.Commit, 40)
	require.False(t, info.Dirty)
	require.NotEmpty(t, info.Branch)
}

func TestDescribeDirtyRepo(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("x"), 0o644))

	info, err := Describe(dir)
	require.NoError(t, err)
	require.True(t, info.Dirty)
}

func TestDescribeSubdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := Describe(sub)
	require.NoError(t, err)
	require.Len(t, info.Commit, 40)
}

func TestDescribeOutsideRepo(t *testing.T) {
	_, err := Describe(t.TempDir())
	require.Error(t, err)
}
