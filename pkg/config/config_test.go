// Test Type: Unit Test
// Description: Tests for configuration loading - layering, formats and validation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func boolPtr(b bool) *bool { return &b }

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "shinydir.toml", `
[settings]
unicode = false

[[automove.rules]]
dir = "~/Downloads"
name = "Downloads"
keep = ["*.part", "Inbox/"]
keep_regex = ['^\.~lock']
keep_dirs = false
to = "Misc"

[[automove.rules.routes]]
pattern = "*.pdf"
to = "Documents"

[[automove.rules.routes]]
regex = '^IMG_(\d+)'
to = "Photos/$1"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Settings.Color, "color defaults to true")
	assert.False(t, cfg.Settings.Unicode)
	assert.True(t, cfg.AutoMove.ScriptWarning)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, filepath.Dir(path), cfg.Dir())

	require.Len(t, cfg.AutoMove.Rules, 1)
	rule := cfg.AutoMove.Rules[0]
	assert.Equal(t, "~/Downloads", rule.Dir)
	assert.Equal(t, "Downloads", rule.Name)
	assert.Equal(t, []string{"*.part", "Inbox/"}, rule.Keep)
	assert.Equal(t, []string{`^\.~lock`}, rule.KeepRegex)
	assert.False(t, rule.KeepDirectories())
	assert.True(t, rule.KeepHiddenEntries())
	assert.Equal(t, "Misc", rule.To)
	assert.Equal(t, []config.Route{
		{Pattern: "*.pdf", To: "Documents"},
		{Regex: `^IMG_(\d+)`, To: "Photos/$1"},
	}, rule.Routes)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "shinydir.yaml", `
settings:
  color: false
automove:
  script_warning: false
  rules:
    - dir: /srv/inbox
      keep: ["*.md"]
      to_script: ./classify.sh
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Settings.Color)
	assert.True(t, cfg.Settings.Unicode)
	assert.False(t, cfg.AutoMove.ScriptWarning)
	require.Len(t, cfg.AutoMove.Rules, 1)
	assert.Equal(t, "./classify.sh", cfg.AutoMove.Rules[0].ToScript)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "shinydir.toml", `
[settings]
color = true

[[automove.rules]]
dir = "/srv/inbox"
to = "Misc"
`)

	t.Setenv("SHINYDIR_SETTINGS_COLOR", "false")
	t.Setenv("SHINYDIR_AUTOMOVE_SCRIPT_WARNING", "false")
	t.Setenv("SHINYDIR_CONFIG", path)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Settings.Color)
	assert.False(t, cfg.AutoMove.ScriptWarning)
	require.Len(t, cfg.AutoMove.Rules, 1)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unreadable_path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shinydir.toml")
		require.NoError(t, os.Mkdir(path, 0755))

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.False(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		path := writeConfig(t, "shinydir.toml", "[automove\nrules = ")
		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_rule", func(t *testing.T) {
		path := writeConfig(t, "shinydir.toml", `
[[automove.rules]]
dir = "/srv/inbox"
`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    config.Rule
		wantErr bool
	}{
		{"static", config.Rule{Dir: "/a", To: "b"}, false},
		{"routes_only", config.Rule{Dir: "/a", Routes: []config.Route{{Pattern: "*.pdf", To: "b"}}}, false},
		{"routes_with_fallback", config.Rule{Dir: "/a", To: "c", Routes: []config.Route{{Regex: "x", To: "b"}}}, false},
		{"script", config.Rule{Dir: "/a", ToScript: "./s.sh --flag"}, false},
		{"keep_options", config.Rule{Dir: "/a", To: "b", KeepDirs: boolPtr(false), KeepHidden: boolPtr(false)}, false},
		{"missing_dir", config.Rule{To: "b"}, true},
		{"missing_destination", config.Rule{Dir: "/a"}, true},
		{"script_with_to", config.Rule{Dir: "/a", To: "b", ToScript: "s"}, true},
		{"script_with_routes", config.Rule{Dir: "/a", ToScript: "s", Routes: []config.Route{{Pattern: "*", To: "b"}}}, true},
		{"unterminated_script", config.Rule{Dir: "/a", ToScript: `s "oops`}, true},
		{"bad_keep_glob", config.Rule{Dir: "/a", To: "b", Keep: []string{"["}}, true},
		{"keep_path_glob", config.Rule{Dir: "/a", To: "b", Keep: []string{"sub/*.txt"}}, true},
		{"route_path_glob", config.Rule{Dir: "/a", Routes: []config.Route{{Pattern: "sub/*.pdf", To: "b"}}}, true},
		{"bad_keep_regex", config.Rule{Dir: "/a", To: "b", KeepRegex: []string{"("}}, true},
		{"route_without_to", config.Rule{Dir: "/a", Routes: []config.Route{{Pattern: "*.pdf"}}}, true},
		{"route_without_matcher", config.Rule{Dir: "/a", Routes: []config.Route{{To: "b"}}}, true},
		{"route_with_both", config.Rule{Dir: "/a", Routes: []config.Route{{Pattern: "*", Regex: ".", To: "b"}}}, true},
		{"route_bad_regex", config.Rule{Dir: "/a", Routes: []config.Route{{Regex: "(", To: "b"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{AutoMove: config.AutoMove{Rules: []config.Rule{tt.rule}}}
			err := config.Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("error_names_rule", func(t *testing.T) {
		cfg := &config.Config{AutoMove: config.AutoMove{Rules: []config.Rule{
			{Dir: "/ok", To: "b"},
			{Dir: "/broken", Name: "Broken"},
		}}}
		err := config.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "automove.rules[1] (Broken)")
	})
}

func TestSample(t *testing.T) {
	path := writeConfig(t, "shinydir.toml", string(config.Sample()))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.AutoMove.Rules)

	out, err := config.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "script_warning = true")
	assert.Contains(t, string(out), "[[automove.rules]]")
}
