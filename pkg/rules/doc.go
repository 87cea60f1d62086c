// Package rules is the rule model of shinydir.
//
// A Rule pairs a watched directory with a Matcher, which decides which
// entries are correctly placed and stay, and a Destination, which computes
// where every other entry belongs. Rules are built once per run and are
// read-only afterwards.
//
// # Pattern Conventions
//
// Keep patterns and pattern routes use glob patterns with these conventions:
//
//   - `notes.md` - Exact filename match
//   - `*.pdf` - Glob pattern matching
//   - `Projects/` - Directory matching (trailing slash)
//   - `*` - Catchall pattern for files
//
// Non-directory patterns never match directories. Patterns are matched
// against base names only, so a `/` anywhere but the end is rejected.
package rules
