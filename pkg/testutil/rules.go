package testutil

import (
	"testing"

	"github.com/arthur-debert/shinydir/pkg/resolver"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/stretchr/testify/require"
)

// StaticRule builds a rule moving everything except keep matches to the static destination to.
// Directories and hidden entries stay in place.
func StaticRule(t *testing.T, dir, to string, keep ...string) *rules.Rule {
	t.Helper()

	matcher, err := rules.NewPatternMatcher(keep, nil, true, true)
	require.NoError(t, err)

	dest, err := resolver.NewStaticDestination(to)
	require.NoError(t, err)

	return &rules.Rule{Directory: dir, Matcher: matcher, Destination: dest}
}

// ScriptRule builds a rule resolving every non-hidden file with command
func ScriptRule(t *testing.T, dir, command, configDir string) *rules.Rule {
	t.Helper()

	matcher, err := rules.NewPatternMatcher(nil, nil, true, true)
	require.NoError(t, err)

	dest, err := resolver.NewScriptDestination(command, configDir)
	require.NoError(t, err)

	return &rules.Rule{Directory: dir, Matcher: matcher, Destination: dest}
}
