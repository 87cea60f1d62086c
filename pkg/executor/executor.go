package executor

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/plan"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	Logger zerolog.Logger
	// Filesystem operations interface for testing
	FS filesystem.FS
}

// Executor moves planned entries
type Executor struct {
	dryRun bool
	logger zerolog.Logger
	fs     filesystem.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
		fs:     fs,
	}
}

// Execute runs every resolved entry of p and returns the outcome as a new
// plan. Entries that failed resolution pass through unchanged. p is not modified.
func (e *Executor) Execute(p plan.Plan) plan.Plan {
	result := p.Clone()
	run := newRunState()

	for i := range result.Outcomes {
		outcome := &result.Outcomes[i]
		if outcome.Kind != plan.Resolved {
			continue
		}

		for j := range outcome.Entries {
			entry := &outcome.Entries[j]
			if entry.State != plan.StateResolved {
				continue
			}
			*entry = e.executeEntry(*entry, run)
		}
	}

	moved, failed := result.Counts()
	e.logger.Info().
		Bool("dry_run", e.dryRun).
		Int("moved", moved).
		Int("failed", failed).
		Msg("Plan executed")

	return result
}

// executeEntry moves one entry. Successful entries, real or simulated, claim their destination.
func (e *Executor) executeEntry(entry plan.EntryResult, run *runState) plan.EntryResult {
	move := entry.Move
	source := filepath.Clean(move.File)
	target := filepath.Clean(move.MoveTo)
	logger := e.logger.With().
		Str("file", move.File).
		Str("move_to", move.MoveTo).
		Bool("dry_run", e.dryRun).
		Logger()

	if run.claimed(target) {
		logger.Debug().Msg("Destination already claimed in this run")
		return entry.Fail(errors.Newf(errors.ErrOverwrite,
			"moving to %s would overwrite a file moved earlier in this run", move.MoveTo))
	}

	parent := filepath.Dir(target)
	if err := e.ensureDir(parent, run); err != nil {
		logger.Error().Err(err).Msg("Could not create destination directory")
		return entry.Fail(errors.Wrapf(err, errors.ErrDirCreate, "couldn't create directory %s", parent))
	}

	if exists, _, err := e.lookup(target, false, run); err != nil {
		logger.Error().Err(err).Msg("Could not check destination")
		return entry.Fail(errors.Wrapf(err, errors.ErrOverwriteCheck, "cannot check overwrite status for %s", move.MoveTo))
	} else if exists {
		logger.Debug().Msg("Destination exists")
		return entry.Fail(errors.Newf(errors.ErrOverwrite, "moving to %s would overwrite a file", move.MoveTo))
	}

	if !e.dryRun {
		if err := filesystem.Move(e.fs, source, target); err != nil {
			logger.Error().Err(err).Msg("Move failed")
			return entry.Fail(errors.Wrapf(err, errors.ErrMove, "couldn't move %s to %s", move.File, move.MoveTo))
		}
		logger.Info().Msg("Moved")
	} else {
		logger.Debug().Msg("Would move")
	}

	run.record(source, target)
	entry.State = plan.StateMoved
	return entry
}

// ensureDir creates dir. A dry run only checks that MkdirAll would succeed:
// the nearest existing ancestor must be a directory.
func (e *Executor) ensureDir(dir string, run *runState) error {
	if !e.dryRun {
		return e.fs.MkdirAll(dir, 0755)
	}

	for {
		exists, isDir, err := e.lookup(dir, true, run)
		if err == nil && exists {
			if isDir {
				return nil
			}
			return &fs.PathError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// lookup reports whether path exists. A dry run answers for the tree as it
// would be after the moves simulated so far.
func (e *Executor) lookup(path string, follow bool, run *runState) (exists, isDir bool, err error) {
	origin := path
	if e.dryRun {
		var state presence
		origin, state = run.locate(path)
		switch state {
		case gone:
			return false, false, nil
		case createdDir:
			return true, true, nil
		}
	}

	var info fs.FileInfo
	if follow {
		info, err = e.fs.Stat(origin)
	} else {
		info, err = e.fs.Lstat(origin)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}
		return false, false, err
	}
	return true, info.IsDir(), nil
}
