package config

// applyDefaults fills in zero-valued fields after decoding.
func (c *Config) applyDefaults() {
	if c.ExtensionDir == "" {
		c.ExtensionDir = "."
	}
	if c.Manifest.Path == "" {
		c.Manifest.Path = "package.json"
	}
	if c.Manifest.ReadmePath == "" {
		c.Manifest.ReadmePath = "README.md"
	}
	if c.Scripts.Compile == "" {
		c.Scripts.Compile = "compile"
	}
	if c.Scripts.Bundle == "" {
		c.Scripts.Bundle = "package"
	}
	if c.Scripts.Test == "" {
		c.Scripts.Test = "test"
	}
	if c.Tools.Node == "" {
		c.Tools.Node = "node"
	}
	if c.Tools.Npm == "" {
		c.Tools.Npm = "npm"
	}
	if c.Tools.Vsce == "" {
		c.Tools.Vsce = "vsce"
	}
	if c.Package.BundledMain == "" {
		c.Package.BundledMain = "./dist/extension.js"
	}
	if c.Package.Extension == "" {
		c.Package.Extension = "vsix"
	}
	if len(c.Artifacts.CleanDirs) == 0 {
		c.Artifacts.CleanDirs = []string{"dist", "out", "node_modules/.cache"}
	}
	if c.Artifacts.KeepLatest == 0 {
		c.Artifacts.KeepLatest = 2
	}
	if c.History.Path == "" {
		c.History.Path = ".vsixbuilder/history.db"
	}
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
