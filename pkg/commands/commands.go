// Package commands provides high-level command implementations for shinydir.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the planning engine. Commands take an
// Options struct and return a Result; they never print.
//
// Each command is implemented in its own subdirectory:
//   - check/     - Check command (plan only)
//   - automove/  - AutoMove command (plan and execute)
//   - rules/     - ListRules command
//   - genconfig/ - GenConfig command
package commands

import (
	"context"

	"github.com/arthur-debert/shinydir/pkg/commands/automove"
	"github.com/arthur-debert/shinydir/pkg/commands/check"
	"github.com/arthur-debert/shinydir/pkg/commands/genconfig"
	"github.com/arthur-debert/shinydir/pkg/commands/rules"
)

// Check reports misplaced entries without moving anything.
type CheckOptions = check.CheckOptions
type CheckResult = check.CheckResult

func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	return check.Check(ctx, opts)
}

// AutoMove builds a plan and executes it.
type AutoMoveOptions = automove.AutoMoveOptions
type AutoMoveResult = automove.AutoMoveResult

func AutoMove(ctx context.Context, opts AutoMoveOptions) (*AutoMoveResult, error) {
	return automove.AutoMove(ctx, opts)
}

// ListRules describes the configured rules.
type ListRulesOptions = rules.ListRulesOptions
type ListRulesResult = rules.ListRulesResult

func ListRules(opts ListRulesOptions) (*ListRulesResult, error) {
	return rules.ListRules(opts)
}

// GenConfig outputs or writes the sample configuration.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
