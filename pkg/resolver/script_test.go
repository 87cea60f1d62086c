// Test Type: Integration Test
// Description: Tests for script destinations - running real programs and parsing their output

package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/resolver"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func scriptRule(t *testing.T, ruleDir, command, configDir string) *rules.Rule {
	t.Helper()
	dest, err := resolver.NewScriptDestination(command, configDir)
	require.NoError(t, err)
	return &rules.Rule{Directory: ruleDir, Destination: dest}
}

func TestScriptDestination(t *testing.T) {
	ctx := context.Background()

	t.Run("receives_file_as_last_argument", func(t *testing.T) {
		configDir := t.TempDir()
		ruleDir := t.TempDir()
		writeScript(t, configDir, "route.sh", `echo "by-arg/$(basename "$2")-$1"`)

		rule := scriptRule(t, ruleDir, "./route.sh tagged", configDir)
		move, err := resolver.Resolve(ctx, rule, entry(ruleDir, "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(ruleDir, "by-arg", "a.txt-tagged", "a.txt"), move.MoveTo)
	})

	t.Run("runs_in_rule_directory_with_environment", func(t *testing.T) {
		configDir := t.TempDir()
		ruleDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(ruleDir, "marker"), nil, 0644))
		writeScript(t, configDir, "env.sh", `[ -f marker ] || exit 3
[ -f "$SHINYDIR_RULE_DIR/marker" ] || exit 4
[ "$SHINYDIR_FILE" = "$1" ] || exit 5
echo Sorted`)

		rule := scriptRule(t, ruleDir, filepath.Join(configDir, "env.sh"), "")
		move, err := resolver.Resolve(ctx, rule, entry(ruleDir, "b.txt"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(ruleDir, "Sorted", "b.txt"), move.MoveTo)
	})

	t.Run("quoted_arguments", func(t *testing.T) {
		dest, err := resolver.NewScriptDestination(`/usr/bin/route --label "two words"`, "")
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/route", dest.Program)
		assert.Equal(t, []string{"--label", "two words"}, dest.Args)
		assert.Equal(t, rules.KindScript, dest.Kind())
	})

	t.Run("non_zero_exit", func(t *testing.T) {
		configDir := t.TempDir()
		writeScript(t, configDir, "fail.sh", `echo "nope" >&2; exit 2`)

		rule := scriptRule(t, t.TempDir(), "./fail.sh", configDir)
		_, err := resolver.Resolve(ctx, rule, entry(rule.Directory, "c.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScriptExit))
		assert.Equal(t, "nope", errors.GetErrorDetails(err)["stderr"])
		assert.Equal(t, 2, errors.GetErrorDetails(err)["exit_code"])
	})

	t.Run("missing_program", func(t *testing.T) {
		rule := scriptRule(t, t.TempDir(), "./does-not-exist.sh", t.TempDir())
		_, err := resolver.Resolve(ctx, rule, entry(rule.Directory, "d.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScriptExec))
	})

	t.Run("empty_output", func(t *testing.T) {
		configDir := t.TempDir()
		writeScript(t, configDir, "silent.sh", `exit 0`)

		rule := scriptRule(t, t.TempDir(), "./silent.sh", configDir)
		_, err := resolver.Resolve(ctx, rule, entry(rule.Directory, "e.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScriptOutput))
	})

	t.Run("multiple_lines", func(t *testing.T) {
		configDir := t.TempDir()
		writeScript(t, configDir, "chatty.sh", `echo one; echo two`)

		rule := scriptRule(t, t.TempDir(), "./chatty.sh", configDir)
		_, err := resolver.Resolve(ctx, rule, entry(rule.Directory, "f.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScriptOutput))
	})

	t.Run("blank_lines_are_ignored", func(t *testing.T) {
		configDir := t.TempDir()
		writeScript(t, configDir, "padded.sh", `echo; echo "Padded  "; echo "   "`)

		rule := scriptRule(t, t.TempDir(), "./padded.sh", configDir)
		move, err := resolver.Resolve(ctx, rule, entry(rule.Directory, "g.txt"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(rule.Directory, "Padded", "g.txt"), move.MoveTo)
	})

	t.Run("unparseable_command", func(t *testing.T) {
		_, err := resolver.NewScriptDestination(`route "unterminated`, "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("empty_command", func(t *testing.T) {
		_, err := resolver.NewScriptDestination("   ", "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestNewScriptDestination_ExpandsEnvironment(t *testing.T) {
	t.Setenv("SHINYDIR_TEST_BIN", "/opt/classifiers")

	dest, err := resolver.NewScriptDestination("$SHINYDIR_TEST_BIN/route.sh", "/etc/shinydir")
	require.NoError(t, err)
	assert.Equal(t, "/opt/classifiers/route.sh", dest.Program)
	assert.Empty(t, dest.Args)
}
