package rules_test

import (
	"testing"

	"github.com/arthur-debert/shinydir/pkg/commands/rules"
	"github.com/arthur-debert/shinydir/pkg/config"
	rulemodel "github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/arthur-debert/shinydir/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRules(t *testing.T) {
	fsys, mem := testutil.NewMemoryFS()
	require.NoError(t, mem.MkdirAll("/inbox", 0755))

	keepHidden := false
	cfg := &config.Config{AutoMove: config.AutoMove{Rules: []config.Rule{
		{Dir: "/inbox", Name: "Inbox", Keep: []string{"*.md"}, KeepRegex: []string{`^draft`}, KeepHidden: &keepHidden, To: "Archive"},
		{Dir: "/desk", Routes: []config.Route{{Pattern: "*.png", To: "Shots"}}},
		{Dir: "/scripts", ToScript: "/usr/local/bin/classify"},
	}}}

	result, err := rules.ListRules(rules.ListRulesOptions{Config: cfg, FileSystem: fsys})
	require.NoError(t, err)
	require.Len(t, result.Rules, 3)

	inbox := result.Rules[0]
	assert.Equal(t, "Inbox", inbox.Name)
	assert.Equal(t, "/inbox", inbox.Directory)
	assert.Equal(t, rulemodel.KindStatic, inbox.Strategy)
	assert.Equal(t, []string{"*.md", "/^draft/", "dirs"}, inbox.Keep)
	assert.True(t, inbox.Exists)
	assert.Equal(t, "*.md /^draft/ dirs", rules.Join(inbox.Keep))

	assert.Equal(t, "/desk", result.Rules[1].Name)
	assert.Equal(t, rulemodel.KindPattern, result.Rules[1].Strategy)
	assert.False(t, result.Rules[1].Exists)

	assert.Equal(t, rulemodel.KindScript, result.Rules[2].Strategy)
}
