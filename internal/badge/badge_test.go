package badge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const readme = `# Demo Extension

[![Version](https://img.shields.io/badge/version-0.1.0-blue.svg)](CHANGELOG.md)
[![License](https://img.shields.io/badge/license-MIT-green.svg)](LICENSE)

Body text stays untouched, including 0.1.0 mentions in prose.
`

func TestUpdateVersionRewritesBadgeOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte(readme), 0o644))

	changed, err := UpdateVersion(path, "0.2.0")
	require.NoError(t, err)
	require.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "version-0.2.0-blue.svg")
	require.Contains(t, string(data), "license-MIT-green.svg")
	require.Contains(t, string(data), "including 0.1.0 mentions in prose")
}

func TestUpdateVersionNoBadge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# No badge here\n"), 0o644))

	changed, err := UpdateVersion(path, "0.2.0")
	require.NoError(t, err)
	require.False(t, changed)
}

func TestUpdateVersionMissingFile(t *testing.T) {
	changed, err := UpdateVersion(filepath.Join(t.TempDir(), "README.md"), "0.2.0")
	require.NoError(t, err)
	require.False(t, changed)
}
