// Package genconfig writes the sample configuration.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/logging"
)

// GenConfigOptions holds options for the config init command
type GenConfigOptions struct {
	// Path is where the sample is written
	Path string

	// Write writes the file; otherwise the content is only returned
	Write bool

	// FileSystem to use (defaults to OS filesystem)
	FileSystem filesystem.FS
}

// GenConfigResult holds the sample and what happened to it
type GenConfigResult struct {
	ConfigContent string
	Path          string
	Written       bool
	// AlreadyExists is set when Path was occupied; an existing file is never overwritten
	AlreadyExists bool
}

// GenConfig outputs or writes the sample configuration
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}

	content := config.Sample()
	result := &GenConfigResult{
		ConfigContent: string(content),
		Path:          opts.Path,
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting sample config")
		return result, nil
	}

	dir := filepath.Dir(opts.Path)
	if err := opts.FileSystem.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	out, err := opts.FileSystem.CreateExclusive(opts.Path, 0644)
	if err != nil {
		if os.IsExist(err) {
			logger.Warn().Str("path", opts.Path).Msg("Config file already exists, skipping")
			result.AlreadyExists = true
			return result, nil
		}
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", opts.Path)
	}

	if _, err := out.Write(content); err != nil {
		_ = out.Close()
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config to %s", opts.Path)
	}
	if err := out.Close(); err != nil {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config to %s", opts.Path)
	}

	logger.Info().Str("path", opts.Path).Msg("Written config file")
	result.Written = true
	return result, nil
}
