// Package automove plans and executes moves.
//
// A real run waits for the run lock before planning and holds it until
// execution ends, so two shinydir processes never act on the same stale
// plan. Dry runs take no lock and never mutate the filesystem.
package automove

import (
	"context"

	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/executor"
	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/paths"
	"github.com/arthur-debert/shinydir/pkg/plan"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/arthur-debert/shinydir/pkg/runlock"
)

// AutoMoveOptions contains options for the auto-move command
type AutoMoveOptions struct {
	// Config is the loaded configuration (required)
	Config *config.Config

	// Target restricts the run to rules at or below this directory
	Target string

	// DryRun performs every check but moves nothing
	DryRun bool

	// LockPath overrides the run lock location (defaults to the XDG state dir)
	LockPath string

	// OnStart is called with the selected rules before any directory is scanned
	OnStart func(ruleList []*rules.Rule)

	// FileSystem to use (defaults to OS filesystem)
	FileSystem filesystem.FS
}

// AutoMoveResult holds the executed plan
type AutoMoveResult struct {
	Rules  []*rules.Rule
	Plan   plan.Plan
	DryRun bool
	Moved  int
	Failed int
}

// AutoMove builds the plan and executes it
func AutoMove(ctx context.Context, opts AutoMoveOptions) (*AutoMoveResult, error) {
	logger := logging.GetLogger("commands.automove")
	run := logging.StartRun(logger, "auto-move", opts.Target, opts.DryRun)

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}

	ruleList, err := plan.RulesFromConfig(opts.Config, opts.Target)
	if err != nil {
		run.Abort(err)
		return nil, err
	}
	run.SetRules(len(ruleList))

	if !opts.DryRun {
		lockPath := opts.LockPath
		if lockPath == "" {
			lockPath = paths.LockFilePath()
		}
		lock, err := runlock.Acquire(ctx, lockPath)
		if err != nil {
			run.Abort(err)
			return nil, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn().Err(err).Msg("Failed to release run lock")
			}
		}()
	}

	if opts.OnStart != nil {
		opts.OnStart(ruleList)
	}

	planned := plan.NewBuilder(opts.FileSystem).Build(ctx, ruleList)
	executed := executor.New(executor.Options{
		DryRun: opts.DryRun,
		FS:     opts.FileSystem,
	}).Execute(planned)

	moved, failed := executed.Counts()
	run.Finish(moved, failed)

	return &AutoMoveResult{
		Rules:  ruleList,
		Plan:   executed,
		DryRun: opts.DryRun,
		Moved:  moved,
		Failed: failed,
	}, nil
}
