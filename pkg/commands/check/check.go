// Package check builds a plan without touching the filesystem.
package check

import (
	"context"

	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/plan"
	"github.com/arthur-debert/shinydir/pkg/rules"
)

// CheckOptions contains options for the check command
type CheckOptions struct {
	// Config is the loaded configuration (required)
	Config *config.Config

	// Target restricts the run to rules at or below this directory.
	// If empty, all rules are checked.
	Target string

	// OnStart is called with the selected rules before any directory is scanned
	OnStart func(ruleList []*rules.Rule)

	// FileSystem to use (defaults to OS filesystem)
	FileSystem filesystem.FS
}

// CheckResult is the read-only report
type CheckResult struct {
	Rules []*rules.Rule
	Plan  plan.Plan
}

// Check reports misplaced entries and where they belong
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	logger := logging.GetLogger("commands.check")
	run := logging.StartRun(logger, "check", opts.Target, false)

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}

	ruleList, err := plan.RulesFromConfig(opts.Config, opts.Target)
	if err != nil {
		run.Abort(err)
		return nil, err
	}
	run.SetRules(len(ruleList))
	logger.Debug().
		Str("target", opts.Target).
		Int("rules", len(ruleList)).
		Msg("Rules selected")

	if opts.OnStart != nil {
		opts.OnStart(ruleList)
	}

	built := plan.NewBuilder(opts.FileSystem).Build(ctx, ruleList)
	run.Finish(built.Counts())

	return &CheckResult{
		Rules: ruleList,
		Plan:  built,
	}, nil
}
