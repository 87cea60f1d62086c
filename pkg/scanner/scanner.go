// Package scanner lists the direct children of a rule directory and keeps
// the ones the rule considers misplaced.
package scanner

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/rs/zerolog"
)

// Scanner scans rule directories
type Scanner struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// New creates a scanner over the given filesystem
func New(fs filesystem.FS) *Scanner {
	return &Scanner{
		fs:     fs,
		logger: logging.GetLogger("scanner"),
	}
}

// Scan returns the misplaced entries of a rule in directory-listing order.
//
// A missing directory yields an ErrDirMissing error, any other listing
// failure an ErrDirList error. Both are rule-level: callers report them and
// carry on with the next rule.
func (s *Scanner) Scan(rule *rules.Rule) ([]rules.Entry, error) {
	s.logger.Debug().
		Str("rule", rule.DisplayName()).
		Str("path", rule.Directory).
		Msg("Scanning directory")

	dirEntries, err := s.fs.ReadDir(rule.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrDirMissing, "directory %s does not exist", rule.Directory)
		}
		return nil, errors.Wrapf(err, errors.ErrDirList, "couldn't list %s", rule.Directory)
	}

	var misplaced []rules.Entry
	for _, dirEntry := range dirEntries {
		entry := rules.Entry{
			Path:  filepath.Join(rule.Directory, dirEntry.Name()),
			Name:  dirEntry.Name(),
			IsDir: dirEntry.IsDir(),
		}

		if rule.Matcher != nil && rule.Matcher.Keep(entry) {
			s.logger.Trace().Str("entry", entry.Name).Msg("Entry in place")
			continue
		}

		s.logger.Debug().
			Str("entry", entry.Name).
			Bool("isDir", entry.IsDir).
			Msg("Entry misplaced")
		misplaced = append(misplaced, entry)
	}

	s.logger.Debug().
		Str("rule", rule.DisplayName()).
		Int("entries", len(dirEntries)).
		Int("misplaced", len(misplaced)).
		Msg("Directory scan complete")

	return misplaced, nil
}
