package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "name": "demo",
  "displayName": "Demo Extension",
  "version": "0.1.0",
  "main": "./out/extension.js",
  "engines": {
    "vscode": "^1.85.0"
  },
  "scripts": {
    "compile": "tsc -p ./",
    "package": "esbuild src/extension.ts --bundle --outfile=dist/extension.js"
  },
  "devDependencies": {
    "typescript": "^5.3.0"
  }
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAccessors(t *testing.T) {
	doc, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	name, ok := doc.Name()
	require.True(t, ok)
	require.Equal(t, "demo", name)

	version, ok := doc.Version()
	require.True(t, ok)
	require.Equal(t, "0.1.0", version)

	main, ok := doc.Main()
	require.True(t, ok)
	require.Equal(t, "./out/extension.js", main)

	scripts := doc.Scripts()
	require.Len(t, scripts, 2)
	require.True(t, doc.HasScript("compile"))
	require.False(t, doc.HasScript("test"))
}

func TestLoadMissingFields(t *testing.T) {
	doc, err := Load(writeManifest(t, `{"name": "bare"}`))
	require.NoError(t, err)

	_, ok := doc.Version()
	require.False(t, ok)
	_, ok = doc.Main()
	require.False(t, ok)
	require.Empty(t, doc.Scripts())
}

func TestLoadRejectsNonObject(t *testing.T) {
	_, err := Load(writeManifest(t, `["not", "an", "object"]`))
	require.Error(t, err)

	_, err = Load(writeManifest(t, `{broken`))
	require.Error(t, err)
}

func TestSaveRoundTripPreservesUnknownKeys(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	doc, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, doc.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sampleManifest, string(data))
}

func TestSetVersionRewritesOnlyVersion(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	doc, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, doc.SetVersion("0.2.0"))
	require.NoError(t, doc.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)

	version, _ := reloaded.Version()
	require.Equal(t, "0.2.0", version)

	// Everything else untouched.
	name, _ := reloaded.Name()
	require.Equal(t, "demo", name)
	main, _ := reloaded.Main()
	require.Equal(t, "./out/extension.js", main)
	require.Len(t, reloaded.Scripts(), 2)
}

func TestSwapAndRestore(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	doc, err := Load(path)
	require.NoError(t, err)

	swap, err := SwapEntrypoint(doc, "./dist/extension.js")
	require.NoError(t, err)

	onDisk, err := Load(path)
	require.NoError(t, err)
	main, _ := onDisk.Main()
	require.Equal(t, "./dist/extension.js", main)

	require.NoError(t, swap.Restore())

	onDisk, err = Load(path)
	require.NoError(t, err)
	main, _ = onDisk.Main()
	require.Equal(t, "./out/extension.js", main)
}

func TestRestoreRunsOnPanic(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	doc, err := Load(path)
	require.NoError(t, err)

	func() {
		defer func() {
			require.NotNil(t, recover())
		}()

		swap, err := SwapEntrypoint(doc, "./dist/extension.js")
		require.NoError(t, err)
		defer func() {
			require.NoError(t, swap.Restore())
		}()

		panic("bundling exploded")
	}()

	onDisk, err := Load(path)
	require.NoError(t, err)
	main, _ := onDisk.Main()
	require.Equal(t, "./out/extension.js", main)
}

func TestRestoreIsIdempotent(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	doc, err := Load(path)
	require.NoError(t, err)

	swap, err := SwapEntrypoint(doc, "./dist/extension.js")
	require.NoError(t, err)

	require.NoError(t, swap.Restore())

	// A later SetMain must not be undone by a second Restore.
	require.NoError(t, doc.SetMain("./other/entry.js"))
	require.NoError(t, doc.Save())
	require.NoError(t, swap.Restore())

	onDisk, err := Load(path)
	require.NoError(t, err)
	main, _ := onDisk.Main()
	require.Equal(t, "./other/entry.js", main)
}

func TestSwapRequiresMainField(t *testing.T) {
	doc, err := Load(writeManifest(t, `{"name": "bare"}`))
	require.NoError(t, err)

	_, err = SwapEntrypoint(doc, "./dist/extension.js")
	require.Error(t, err)
}
