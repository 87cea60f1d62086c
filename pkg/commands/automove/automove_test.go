package automove_test

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arthur-debert/shinydir/pkg/commands/automove"
	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/plan"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/arthur-debert/shinydir/pkg/runlock"
	"github.com/arthur-debert/shinydir/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inboxConfig() *config.Config {
	return &config.Config{AutoMove: config.AutoMove{Rules: []config.Rule{
		{Dir: "/inbox", Keep: []string{"*.md"}, To: "Archive"},
		{Dir: "/missing", To: "Archive"},
	}}}
}

func TestAutoMove(t *testing.T) {
	ctx := context.Background()

	t.Run("moves_misplaced_files", func(t *testing.T) {
		fsys, mem := testutil.NewMemoryFS()
		testutil.WriteTree(t, mem, "/inbox", map[string]string{
			"notes.md":   "stays",
			"report.pdf": "moves",
		})

		result, err := automove.AutoMove(ctx, automove.AutoMoveOptions{
			Config:     inboxConfig(),
			FileSystem: fsys,
			LockPath:   filepath.Join(t.TempDir(), "automove.lock"),
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Moved)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, plan.DirectoryMissing, result.Plan.Outcomes[1].Kind)
		assert.True(t, testutil.Exists(t, mem, "/inbox/Archive/report.pdf"))
		assert.True(t, testutil.Exists(t, mem, "/inbox/notes.md"))
	})

	t.Run("dry_run_takes_no_lock", func(t *testing.T) {
		fsys, mem := testutil.NewMemoryFS()
		testutil.WriteTree(t, mem, "/inbox", map[string]string{"report.pdf": "moves"})

		lockPath := filepath.Join(t.TempDir(), "automove.lock")
		held, err := runlock.Acquire(ctx, lockPath)
		require.NoError(t, err)
		defer func() { _ = held.Release() }()

		result, err := automove.AutoMove(ctx, automove.AutoMoveOptions{
			Config:     inboxConfig(),
			FileSystem: fsys,
			DryRun:     true,
			LockPath:   lockPath,
		})
		require.NoError(t, err)

		assert.True(t, result.DryRun)
		assert.Equal(t, 1, result.Moved)
		assert.True(t, testutil.Exists(t, mem, "/inbox/report.pdf"))
	})

	t.Run("waits_for_held_lock", func(t *testing.T) {
		fsys, mem := testutil.NewMemoryFS()
		testutil.WriteTree(t, mem, "/inbox", map[string]string{"report.pdf": "moves"})

		lockPath := filepath.Join(t.TempDir(), "automove.lock")
		held, err := runlock.Acquire(ctx, lockPath)
		require.NoError(t, err)

		var released atomic.Bool
		go func() {
			time.Sleep(3 * runlock.RetryDelay)
			released.Store(true)
			_ = held.Release()
		}()

		startedAfterRelease := false
		result, err := automove.AutoMove(ctx, automove.AutoMoveOptions{
			Config:     inboxConfig(),
			FileSystem: fsys,
			LockPath:   lockPath,
			OnStart:    func(_ []*rules.Rule) { startedAfterRelease = released.Load() },
		})
		require.NoError(t, err)

		assert.True(t, startedAfterRelease, "planning starts only once the lock is free")
		assert.Equal(t, 1, result.Moved)
		assert.True(t, testutil.Exists(t, mem, "/inbox/Archive/report.pdf"))
	})

	t.Run("cancelled_while_waiting", func(t *testing.T) {
		fsys, mem := testutil.NewMemoryFS()
		testutil.WriteTree(t, mem, "/inbox", map[string]string{"report.pdf": "moves"})

		lockPath := filepath.Join(t.TempDir(), "automove.lock")
		held, err := runlock.Acquire(ctx, lockPath)
		require.NoError(t, err)
		defer func() { _ = held.Release() }()

		waitCtx, cancel := context.WithTimeout(ctx, 2*runlock.RetryDelay)
		defer cancel()

		started := false
		_, err = automove.AutoMove(waitCtx, automove.AutoMoveOptions{
			Config:     inboxConfig(),
			FileSystem: fsys,
			LockPath:   lockPath,
			OnStart:    func(_ []*rules.Rule) { started = true },
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLocked))
		assert.False(t, started)
		assert.True(t, testutil.Exists(t, mem, "/inbox/report.pdf"))
	})
}
