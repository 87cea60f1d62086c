package plan

import (
	"context"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/resolver"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/arthur-debert/shinydir/pkg/scanner"
	"github.com/rs/zerolog"
)

// Builder scans and resolves rules into a Plan
type Builder struct {
	scanner *scanner.Scanner
	logger  zerolog.Logger
}

// NewBuilder creates a Builder reading directories through fs
func NewBuilder(fs filesystem.FS) *Builder {
	return &Builder{
		scanner: scanner.New(fs),
		logger:  logging.GetLogger("plan"),
	}
}

// Build processes rules sequentially in the given order. It never fails as a
// whole: directory and entry problems are recorded in the returned Plan.
func (b *Builder) Build(ctx context.Context, ruleList []*rules.Rule) Plan {
	p := Plan{Outcomes: make([]RuleOutcome, 0, len(ruleList))}

	for _, rule := range ruleList {
		p.Outcomes = append(p.Outcomes, b.buildRule(ctx, rule))
	}

	ok, failed := p.Counts()
	b.logger.Info().
		Int("rules", len(p.Outcomes)).
		Int("resolved", ok).
		Int("failed", failed).
		Msg("Plan built")

	return p
}

func (b *Builder) buildRule(ctx context.Context, rule *rules.Rule) RuleOutcome {
	logger := b.logger.With().Str("rule", rule.DisplayName()).Logger()

	entries, err := b.scanner.Scan(rule)
	if err != nil {
		kind := ListFailed
		if errors.IsErrorCode(err, errors.ErrDirMissing) {
			kind = DirectoryMissing
		}
		logger.Warn().Err(err).Str("outcome", kind.String()).Msg("Rule skipped")
		return RuleOutcome{Rule: rule, Kind: kind, Err: err}
	}

	outcome := RuleOutcome{
		Rule:    rule,
		Kind:    Resolved,
		Entries: make([]EntryResult, 0, len(entries)),
	}

	for _, entry := range entries {
		result := EntryResult{Entry: entry, State: StateResolved}

		move, err := resolver.Resolve(ctx, rule, entry)
		if err != nil {
			logger.Debug().Err(err).Str("file", entry.Path).Msg("Entry could not be resolved")
			result = result.Fail(err)
		} else {
			result.Move = move
		}

		outcome.Entries = append(outcome.Entries, result)
	}

	logger.Debug().Int("misplaced", len(outcome.Entries)).Msg("Rule resolved")
	return outcome
}
