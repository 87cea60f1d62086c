package rules

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/shinydir/pkg/paths"
)

// Entry is a filesystem entry found directly under a rule directory
type Entry struct {
	Path  string // Absolute path
	Name  string // Base name
	IsDir bool   // Whether this is a directory
}

// Matcher decides whether an entry is correctly placed
type Matcher interface {
	// Keep reports whether the entry stays where it is
	Keep(entry Entry) bool
}

// Kind names a destination strategy
type Kind string

const (
	KindStatic  Kind = "static"
	KindPattern Kind = "pattern"
	KindScript  Kind = "script"
)

// Destination computes where a misplaced entry belongs.
//
// The returned fragment is a destination directory: absolute, ~-relative or
// relative to the rule directory. Implementations other than KindScript must
// be pure functions of the entry.
type Destination interface {
	Kind() Kind
	Resolve(ctx context.Context, entry Entry) (string, error)
}

// Rule is one placement rule
type Rule struct {
	// Directory is the absolute, canonical watched directory
	Directory string

	// CustomName overrides the display name when set
	CustomName string

	Matcher     Matcher
	Destination Destination
}

// DisplayName returns the custom name, or the directory with the home directory contracted
func (r *Rule) DisplayName() string {
	if r.CustomName != "" {
		return r.CustomName
	}
	return paths.ContractHome(r.Directory)
}

// UsesScript reports whether resolving entries of this rule runs an external program
func (r *Rule) UsesScript() bool {
	return r.Destination != nil && r.Destination.Kind() == KindScript
}

// Relative returns path relative to the rule directory when it lies below it
func (r *Rule) Relative(path string) string {
	if !paths.IsUnder(path, r.Directory) {
		return path
	}
	rel, err := filepath.Rel(r.Directory, path)
	if err != nil {
		return path
	}
	return rel
}

// AnyUsesScript reports whether any rule resolves destinations with a script
func AnyUsesScript(ruleList []*Rule) bool {
	for _, rule := range ruleList {
		if rule.UsesScript() {
			return true
		}
	}
	return false
}
