package config

import (
	"fmt"
	"os"
)

const defaultConfigTemplate = `# vsixbuilder configuration
# All relative paths are resolved against extension_dir.

extension_dir: .

manifest:
  path: package.json
  readme_path: README.md

# npm script names invoked during the build.
scripts:
  compile: compile
  bundle: package
  test: test

# External tool binaries. Override when using a version manager shim.
tools:
  node: node
  npm: npm
  vsce: vsce

package:
  bundled_main: ./dist/extension.js
  extension: vsix
  allow_missing_repository: true

artifacts:
  clean_dirs:
    - dist
    - out
    - node_modules/.cache
  keep_latest: 2

history:
  enabled: true
  path: .vsixbuilder/history.db
`

// Init writes a default configuration file to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
