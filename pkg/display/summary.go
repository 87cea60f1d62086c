package display

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/plan"
)

// Mode selects the wording of the summary
type Mode int

const (
	// ModeCheck reports what would move
	ModeCheck Mode = iota
	// ModeMove reports what was moved
	ModeMove
)

// DestCount is a destination directory and how many entries go there
type DestCount struct {
	Dir   string
	Count int
}

// RuleSummary is the display view of one rule outcome
type RuleSummary struct {
	Name         string
	CustomName   bool
	Kind         plan.OutcomeKind
	OK           int
	Failed       int
	Destinations []DestCount
	Errors       []string
	Err          error
}

// Summarize converts a rule outcome into its display view.
// Destinations are sorted and deduplicated, and shown relative to the rule directory.
func Summarize(outcome plan.RuleOutcome) RuleSummary {
	summary := RuleSummary{
		Kind: outcome.Kind,
		Err:  outcome.Err,
	}
	if outcome.Rule != nil {
		summary.Name = outcome.Rule.DisplayName()
		summary.CustomName = outcome.Rule.CustomName != ""
	}

	counts := make(map[string]int)
	for _, entry := range outcome.Entries {
		if !entry.OK() {
			summary.Failed++
			summary.Errors = append(summary.Errors, errors.Describe(entry.Err))
			continue
		}
		summary.OK++
		counts[filepath.Dir(entry.Move.MoveTo)]++
	}

	dirs := make([]string, 0, len(counts))
	for dir := range counts {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		shown := dir
		if outcome.Rule != nil {
			shown = outcome.Rule.Relative(dir)
		}
		summary.Destinations = append(summary.Destinations, DestCount{Dir: shown, Count: counts[dir]})
	}

	return summary
}
