// Package runlock serializes auto-move runs across shinydir processes.
//
// Only non-dry auto-move takes the lock. A second run waits for the first to
// finish and then plans against the tree the first run left behind. The lock
// does not guard against other programs modifying watched directories.
package runlock

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// RetryDelay is how often a waiting run polls the lock
const RetryDelay = 100 * time.Millisecond

// Lock is a held run lock
type Lock struct {
	flock  *flock.Flock
	path   string
	logger zerolog.Logger
}

// Acquire takes the exclusive lock at path, waiting while another process
// holds it. It only fails when ctx ends first (ErrLocked) or the lock file
// cannot be used.
func Acquire(ctx context.Context, path string) (*Lock, error) {
	logger := logging.GetLogger("runlock").With().Str("path", path).Logger()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to create lock directory for %s", path)
	}

	fl := flock.New(path)
	acquired, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to try lock on %s", path)
	}

	if !acquired {
		logger.Info().Msg("Another auto-move is running, waiting for it to finish")
		acquired, err = fl.TryLockContext(ctx, RetryDelay)
		if ctxErr := ctx.Err(); ctxErr != nil && !acquired {
			return nil, errors.Wrapf(ctxErr, errors.ErrLocked, "gave up waiting for the auto-move lock %s", path).
				WithDetail("path", path)
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to lock %s", path)
		}
	}

	logger.Debug().Msg("Run lock acquired")
	return &Lock{flock: fl, path: path, logger: logger}, nil
}

// Path returns the lock file location
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks. Calling it on a released lock is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	if err := l.flock.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to release lock on %s", l.path)
	}
	l.flock = nil
	l.logger.Debug().Msg("Run lock released")
	return nil
}
