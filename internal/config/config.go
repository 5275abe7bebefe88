// Package config loads and validates the vsixbuilder configuration file.
// All paths are resolved relative to the extension directory, so a single
// binary can drive builds for any checkout location.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/vsixbuilder/internal/errors"
)

// Config represents the application configuration
type Config struct {
	// ExtensionDir is the root of the extension source tree. All relative
	// paths below are resolved against it.
	ExtensionDir string `yaml:"extension_dir"`

	Manifest  ManifestConfig  `yaml:"manifest"`
	Scripts   ScriptsConfig   `yaml:"scripts"`
	Tools     ToolsConfig     `yaml:"tools"`
	Package   PackageConfig   `yaml:"package"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	History   HistoryConfig   `yaml:"history"`
}

// ManifestConfig locates the package manifest and related documents.
type ManifestConfig struct {
	Path       string `yaml:"path"`        // package.json location
	ReadmePath string `yaml:"readme_path"` // README carrying the version badge
}

// ScriptsConfig names the npm scripts the builder invokes.
type ScriptsConfig struct {
	Compile string `yaml:"compile"`
	Bundle  string `yaml:"bundle"`
	Test    string `yaml:"test"`
}

// ToolsConfig allows overriding the external tool binary names.
type ToolsConfig struct {
	Node string `yaml:"node"`
	Npm  string `yaml:"npm"`
	Vsce string `yaml:"vsce"`
}

// PackageConfig controls the vsce packaging step.
type PackageConfig struct {
	// BundledMain is the entrypoint the manifest points at while packaging.
	BundledMain string `yaml:"bundled_main"`
	// Extension is the archive file extension (without dot).
	Extension string `yaml:"extension"`
	// AllowMissingRepository passes --allow-missing-repository to vsce.
	// nil means enabled: local extensions rarely declare a repository.
	AllowMissingRepository *bool `yaml:"allow_missing_repository"`
}

// ArtifactsConfig controls artifact cleanup and archive pruning.
type ArtifactsConfig struct {
	// CleanDirs are directories safe to delete before and after a build.
	// Keep this list conservative to avoid deleting developer files.
	CleanDirs []string `yaml:"clean_dirs"`
	// KeepLatest is how many archives to retain when pruning.
	KeepLatest int `yaml:"keep_latest"`
}

// HistoryConfig controls the local build-history store.
type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled"` // nil means enabled
	Path    string `yaml:"path"`
}

// HistoryEnabled reports whether build runs should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// AllowMissingRepository reports whether vsce may package a manifest
// without a repository field.
func (c *Config) AllowMissingRepository() bool {
	return c.Package.AllowMissingRepository == nil || *c.Package.AllowMissingRepository
}

// Load loads configuration from the specified file. A missing file is not an
// error: the tool is usable without one, so defaults are returned instead.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects configurations the pipeline cannot act on.
func (c *Config) validate() error {
	if c.Artifacts.KeepLatest < 0 {
		return errors.ValidationFailed("artifacts.keep_latest",
			fmt.Sprintf("must not be negative: %d", c.Artifacts.KeepLatest))
	}
	for _, dir := range c.Artifacts.CleanDirs {
		if dir == "" || dir == "." || dir == ".." || filepath.IsAbs(dir) {
			return errors.ValidationFailed("artifacts.clean_dirs",
				fmt.Sprintf("%q is not a safe relative directory", dir))
		}
	}
	return nil
}

// ManifestPath resolves the manifest location against the extension directory.
func (c *Config) ManifestPath() string {
	return c.resolve(c.Manifest.Path)
}

// ReadmePath resolves the README location against the extension directory.
func (c *Config) ReadmePath() string {
	return c.resolve(c.Manifest.ReadmePath)
}

// HistoryPath resolves the history database location against the extension
// directory.
func (c *Config) HistoryPath() string {
	return c.resolve(c.History.Path)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ExtensionDir, path)
}
