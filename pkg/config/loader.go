package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "SHINYDIR_"

// Load reads, decodes and validates the configuration at path
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("rules", len(cfg.AutoMove.Rules)).
		Msg("Configuration loaded")

	return cfg, nil
}

// load assembles the configuration without validating it
func load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Configuration file
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "could not read config file %s", path)
	}

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		// koanf returns the provider's read error unwrapped; anything else came from the parser
		var pathErr *fs.PathError
		if stderrors.As(err, &pathErr) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "could not read config file %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "could not parse config file %s", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid configuration in %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cfg.Path = abs

	return &cfg, nil
}

// parserFor picks the koanf parser from the file extension; TOML is the default
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps SHINYDIR_SECTION_KEY to section.key. Only the first underscore
// separates the section, so SHINYDIR_AUTOMOVE_SCRIPT_WARNING becomes
// automove.script_warning. Variables without a section (SHINYDIR_CONFIG) are ignored.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found || section == "" || rest == "" {
		return ""
	}
	switch section {
	case "settings", "automove":
		return section + "." + rest
	default:
		return ""
	}
}
