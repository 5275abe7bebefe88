package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	require.Equal(t, ".", cfg.ExtensionDir)
	require.Equal(t, "package.json", cfg.Manifest.Path)
	require.Equal(t, "compile", cfg.Scripts.Compile)
	require.Equal(t, "package", cfg.Scripts.Bundle)
	require.Equal(t, []string{"dist", "out", "node_modules/.cache"}, cfg.Artifacts.CleanDirs)
	require.Equal(t, 2, cfg.Artifacts.KeepLatest)
	require.Equal(t, "vsix", cfg.Package.Extension)
	require.True(t, cfg.HistoryEnabled())
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vsixbuilder.yaml")
	content := `
extension_dir: /work/ext
artifacts:
  keep_latest: 5
history:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/work/ext", cfg.ExtensionDir)
	require.Equal(t, 5, cfg.Artifacts.KeepLatest)
	require.Equal(t, "npm", cfg.Tools.Npm)
	require.Equal(t, "./dist/extension.js", cfg.Package.BundledMain)
	require.False(t, cfg.HistoryEnabled())
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("EXT_ROOT", "/srv/checkout")

	path := filepath.Join(t.TempDir(), "vsixbuilder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extension_dir: ${EXT_ROOT}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/checkout", cfg.ExtensionDir)
}

func TestLoadRejectsUnsafeCleanDirs(t *testing.T) {
	for _, dir := range []string{"/etc", "..", "."} {
		path := filepath.Join(t.TempDir(), "vsixbuilder.yaml")
		content := "artifacts:\n  clean_dirs:\n    - \"" + dir + "\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := Load(path)
		require.Error(t, err, "clean dir %q should be rejected", dir)
		require.True(t, errors.IsCategory(err, errors.CategoryValidation))
	}
}

func TestLoadRejectsNegativeKeepLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vsixbuilder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("artifacts:\n  keep_latest: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
	require.ErrorContains(t, err, "keep_latest")
}

func TestPathResolution(t *testing.T) {
	cfg := Default()
	cfg.ExtensionDir = "/work/ext"

	require.Equal(t, filepath.Join("/work/ext", "package.json"), cfg.ManifestPath())
	require.Equal(t, filepath.Join("/work/ext", "README.md"), cfg.ReadmePath())
	require.Equal(t, filepath.Join("/work/ext", ".vsixbuilder", "history.db"), cfg.HistoryPath())

	cfg.Manifest.Path = "/abs/package.json"
	require.Equal(t, "/abs/package.json", cfg.ManifestPath())
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vsixbuilder.yaml")

	require.NoError(t, Init(path, false))

	// Generated file must itself load cleanly.
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Artifacts.KeepLatest)

	// Refuses to overwrite without force.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
