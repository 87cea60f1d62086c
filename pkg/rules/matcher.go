package rules

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/shinydir/pkg/errors"
)

// PatternMatcher keeps entries that match any of its criteria
type PatternMatcher struct {
	Globs      []string
	Regexes    []*regexp.Regexp
	KeepDirs   bool
	KeepHidden bool
}

// NewPatternMatcher validates the patterns and builds a matcher
func NewPatternMatcher(globs, regexes []string, keepDirs, keepHidden bool) (*PatternMatcher, error) {
	m := &PatternMatcher{
		KeepDirs:   keepDirs,
		KeepHidden: keepHidden,
	}

	for _, glob := range globs {
		if err := ValidatePattern(glob); err != nil {
			return nil, err
		}
		m.Globs = append(m.Globs, glob)
	}

	for _, expr := range regexes {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid keep_regex %q", expr)
		}
		m.Regexes = append(m.Regexes, re)
	}

	return m, nil
}

// Keep implements Matcher
func (m *PatternMatcher) Keep(entry Entry) bool {
	if entry.IsDir && m.KeepDirs {
		return true
	}
	if m.KeepHidden && strings.HasPrefix(entry.Name, ".") {
		return true
	}
	for _, glob := range m.Globs {
		if MatchPattern(entry.Name, entry.IsDir, glob) {
			return true
		}
	}
	for _, re := range m.Regexes {
		if re.MatchString(entry.Name) {
			return true
		}
	}
	return false
}

// ValidatePattern reports malformed glob patterns
func ValidatePattern(pattern string) error {
	if strings.TrimSuffix(pattern, "/") == "" {
		return errors.New(errors.ErrConfigValid, "empty pattern")
	}
	// Only the top level of a rule directory is scanned, so a path pattern could never match.
	if strings.Contains(strings.TrimSuffix(pattern, "/"), "/") {
		return errors.Newf(errors.ErrConfigValid, "pattern %q must not contain a path separator", pattern)
	}
	if _, err := filepath.Match(strings.TrimSuffix(pattern, "/"), ""); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid pattern %q", pattern)
	}
	return nil
}

// MatchPattern checks an entry's base name against a pattern with our conventions
func MatchPattern(name string, isDir bool, pattern string) bool {
	// Directory matching - pattern ends with /
	if strings.HasSuffix(pattern, "/") {
		if !isDir {
			return false
		}
		dirPattern := strings.TrimSuffix(pattern, "/")
		matched, _ := filepath.Match(dirPattern, name)
		return matched
	}

	// Don't match directories with non-directory patterns
	if isDir {
		return false
	}

	matched, _ := filepath.Match(pattern, name)
	return matched
}
