package config

import "path/filepath"

// Config is the complete shinydir configuration
type Config struct {
	Settings Settings `koanf:"settings" toml:"settings"`
	AutoMove AutoMove `koanf:"automove" toml:"automove"`

	// Path is the file the configuration was loaded from
	Path string `koanf:"-" toml:"-"`
}

// Settings holds presentation preferences
type Settings struct {
	Color   bool `koanf:"color" toml:"color"`
	Unicode bool `koanf:"unicode" toml:"unicode"`
}

// AutoMove holds the rule set and auto-move behavior
type AutoMove struct {
	ScriptWarning bool   `koanf:"script_warning" toml:"script_warning"`
	Rules         []Rule `koanf:"rules" toml:"rules"`
}

// Rule is one rule definition as written in the configuration file
type Rule struct {
	Dir        string   `koanf:"dir" toml:"dir"`
	Name       string   `koanf:"name" toml:"name,omitempty"`
	Keep       []string `koanf:"keep" toml:"keep,omitempty"`
	KeepRegex  []string `koanf:"keep_regex" toml:"keep_regex,omitempty"`
	KeepDirs   *bool    `koanf:"keep_dirs" toml:"keep_dirs,omitempty"`
	KeepHidden *bool    `koanf:"keep_hidden" toml:"keep_hidden,omitempty"`
	To         string   `koanf:"to" toml:"to,omitempty"`
	ToScript   string   `koanf:"to_script" toml:"to_script,omitempty"`
	Routes     []Route  `koanf:"routes" toml:"routes,omitempty"`
}

// Route sends entries matching Pattern (a glob) or Regex to To
type Route struct {
	Pattern string `koanf:"pattern" toml:"pattern,omitempty"`
	Regex   string `koanf:"regex" toml:"regex,omitempty"`
	To      string `koanf:"to" toml:"to"`
}

// KeepDirectories reports whether directories stay in place. Defaults to true.
func (r Rule) KeepDirectories() bool {
	return r.KeepDirs == nil || *r.KeepDirs
}

// KeepHiddenEntries reports whether dot-entries stay in place. Defaults to true.
func (r Rule) KeepHiddenEntries() bool {
	return r.KeepHidden == nil || *r.KeepHidden
}

// Dir returns the directory holding the configuration file
func (c *Config) Dir() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// defaults are the values used when neither the file nor the environment sets them
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"settings.color":          true,
		"settings.unicode":        true,
		"automove.script_warning": true,
	}
}
