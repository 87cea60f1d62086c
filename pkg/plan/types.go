package plan

import (
	"github.com/arthur-debert/shinydir/pkg/resolver"
	"github.com/arthur-debert/shinydir/pkg/rules"
)

// OutcomeKind tells what happened to a rule
type OutcomeKind int

const (
	// Resolved means the directory was listed and every misplaced entry resolved
	Resolved OutcomeKind = iota
	// DirectoryMissing means the rule directory does not exist
	DirectoryMissing
	// ListFailed means the directory exists but could not be listed
	ListFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case DirectoryMissing:
		return "directory_missing"
	case ListFailed:
		return "list_failed"
	default:
		return "unknown"
	}
}

// State is the lifecycle position of one entry
type State int

const (
	// StateResolved entries have a destination and have not been executed
	StateResolved State = iota
	// StateMoved entries were moved, or would be in dry-run
	StateMoved
	// StateFailed entries carry an error from resolution or execution
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateResolved:
		return "resolved"
	case StateMoved:
		return "moved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EntryResult is the outcome for one misplaced entry.
// Move is set unless resolution failed; Err is set exactly when State is StateFailed.
type EntryResult struct {
	Entry rules.Entry
	Move  resolver.Move
	Err   error
	State State
}

// OK reports whether the entry has not failed
func (e EntryResult) OK() bool {
	return e.State != StateFailed
}

// Fail returns a copy of the entry downgraded to an error
func (e EntryResult) Fail(err error) EntryResult {
	e.Err = err
	e.State = StateFailed
	return e
}

// RuleOutcome is the result for one rule
type RuleOutcome struct {
	Rule    *rules.Rule
	Kind    OutcomeKind
	Entries []EntryResult

	// Err is set for ListFailed and DirectoryMissing
	Err error
}

// Succeeded returns the entries that have not failed, in order
func (o RuleOutcome) Succeeded() []EntryResult {
	var out []EntryResult
	for _, entry := range o.Entries {
		if entry.OK() {
			out = append(out, entry)
		}
	}
	return out
}

// Failed returns the failed entries, in order
func (o RuleOutcome) Failed() []EntryResult {
	var out []EntryResult
	for _, entry := range o.Entries {
		if !entry.OK() {
			out = append(out, entry)
		}
	}
	return out
}

// Plan is the ordered set of rule outcomes for one run
type Plan struct {
	Outcomes []RuleOutcome
}

// Clone returns a deep copy of the outcome and entry slices. Rules are shared; they are read-only.
func (p Plan) Clone() Plan {
	out := Plan{Outcomes: make([]RuleOutcome, len(p.Outcomes))}
	for i, outcome := range p.Outcomes {
		outcome.Entries = append([]EntryResult(nil), outcome.Entries...)
		out.Outcomes[i] = outcome
	}
	return out
}

// Moves returns every non-failed move in plan order
func (p Plan) Moves() []resolver.Move {
	var moves []resolver.Move
	for _, outcome := range p.Outcomes {
		for _, entry := range outcome.Succeeded() {
			moves = append(moves, entry.Move)
		}
	}
	return moves
}

// Counts tallies non-failed and failed entries across the plan
func (p Plan) Counts() (ok, failed int) {
	for _, outcome := range p.Outcomes {
		for _, entry := range outcome.Entries {
			if entry.OK() {
				ok++
			} else {
				failed++
			}
		}
	}
	return ok, failed
}
