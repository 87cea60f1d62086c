// Package plan builds the ordered set of moves a run would perform.
//
// A Plan holds one RuleOutcome per rule in declaration order. Each outcome
// is either DirectoryMissing, ListFailed, or Resolved with an ordered list of
// EntryResults. Entry-level failures are data: one failed entry never hides
// its siblings. Building a plan has no filesystem side effects, so the same
// plan backs both `check` and `auto-move`.
package plan
