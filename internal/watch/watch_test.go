package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/vsixbuilder/internal/config"
)

func TestResolveSourceDirsPrefersExistingSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))

	cfg := config.Default()
	cfg.ExtensionDir = dir

	dirs := resolveSourceDirs(cfg, []string{"src", "missing"})
	require.Equal(t, []string{filepath.Join(dir, "src")}, dirs)
}

func TestResolveSourceDirsFallsBackToRoot(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ExtensionDir = dir

	dirs := resolveSourceDirs(cfg, []string{"src"})
	require.Equal(t, []string{dir}, dirs)
}

func TestShouldIgnoreEvent(t *testing.T) {
	ignored := []string{
		"/x/src/.extension.ts.swp",
		"/x/src/file.ts~",
		"/x/src/#file.ts#",
		"/x/src/.DS_Store",
		"/x/Thumbs.db",
	}
	for _, p := range ignored {
		require.True(t, shouldIgnoreEvent(p), p)
	}

	kept := []string{"/x/src/extension.ts", "/x/src/util/helpers.ts", "/x/package.json"}
	for _, p := range kept {
		require.False(t, shouldIgnoreEvent(p), p)
	}
}

func TestSkipDir(t *testing.T) {
	require.True(t, skipDir("node_modules"))
	require.True(t, skipDir("dist"))
	require.True(t, skipDir(".git"))
	require.False(t, skipDir("src"))
	require.False(t, skipDir("test"))
}
