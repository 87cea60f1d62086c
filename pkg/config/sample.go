package config

import (
	_ "embed"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/shinydir.toml
var sampleConfig []byte

// Sample returns the annotated example configuration written by `config init`
func Sample() []byte {
	out := make([]byte, len(sampleConfig))
	copy(out, sampleConfig)
	return out
}

// Marshal renders the effective configuration as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
