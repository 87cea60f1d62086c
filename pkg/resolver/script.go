package resolver

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/paths"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"mvdan.cc/sh/v3/shell"
)

// Environment passed to destination scripts
const (
	EnvScriptFile    = "SHINYDIR_FILE"
	EnvScriptRuleDir = "SHINYDIR_RULE_DIR"
)

// stderrLimit caps how much script stderr is kept in error details
const stderrLimit = 512

// ScriptDestination asks an external program where an entry belongs.
//
// The program receives the entry's absolute path as its last argument and
// runs with the rule directory as working directory. Its stdout must hold
// exactly one non-empty line: the destination directory.
type ScriptDestination struct {
	Command string
	Program string
	Args    []string
}

// NewScriptDestination tokenizes command the way a POSIX shell would, expanding
// ~ and environment variables. A relative program path containing a separator is
// resolved against configDir; bare names are looked up in PATH at run time.
func NewScriptDestination(command, configDir string) (*ScriptDestination, error) {
	fields, err := shell.Fields(command, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "cannot parse to_script %q", command)
	}
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrConfigValid, "to_script cannot be empty")
	}

	program := fields[0]
	program = paths.ExpandHome(program)
	if !filepath.IsAbs(program) && strings.ContainsRune(program, filepath.Separator) && configDir != "" {
		program = filepath.Join(configDir, program)
	}

	return &ScriptDestination{
		Command: command,
		Program: program,
		Args:    fields[1:],
	}, nil
}

// Kind implements rules.Destination
func (s *ScriptDestination) Kind() rules.Kind {
	return rules.KindScript
}

// Resolve implements rules.Destination
func (s *ScriptDestination) Resolve(ctx context.Context, entry rules.Entry) (string, error) {
	ruleDir := filepath.Dir(entry.Path)

	args := append(append([]string{}, s.Args...), entry.Path)
	cmd := exec.CommandContext(ctx, s.Program, args...)
	cmd.Dir = ruleDir
	cmd.Env = append(os.Environ(),
		EnvScriptFile+"="+entry.Path,
		EnvScriptRuleDir+"="+ruleDir,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", errors.Newf(errors.ErrScriptExit, "script %q exited with status %d for %s",
				s.Command, exitErr.ExitCode(), entry.Path).
				WithDetail("exit_code", exitErr.ExitCode()).
				WithDetail("stderr", truncate(strings.TrimSpace(stderr.String()), stderrLimit))
		}
		return "", errors.Wrapf(err, errors.ErrScriptExec, "cannot run script %q", s.Command)
	}

	return parseScriptOutput(stdout.String(), s.Command, entry.Path)
}

// parseScriptOutput extracts the single destination line from script stdout
func parseScriptOutput(output, command, file string) (string, error) {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		// Leading whitespace can be part of a directory name
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, " \t\r"))
		}
	}

	switch len(lines) {
	case 1:
		return lines[0], nil
	case 0:
		return "", errors.Newf(errors.ErrScriptOutput, "script %q printed no destination for %s", command, file)
	default:
		return "", errors.Newf(errors.ErrScriptOutput, "script %q printed %d lines for %s, expected one",
			command, len(lines), file).
			WithDetail("output", truncate(output, stderrLimit))
	}
}

// truncate cuts s to at most limit bytes without splitting a UTF-8 sequence
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}
