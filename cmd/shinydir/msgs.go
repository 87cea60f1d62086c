package shinydir

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep directories tidy with rule-driven moves"
	MsgCheckShort      = "Report misplaced entries without moving them"
	MsgAutoMoveShort   = "Move misplaced entries to their destinations"
	MsgRulesShort      = "List the configured rules"
	MsgRulesLong       = "Rules shows every configured rule, its directory, destination strategy and keep patterns, and whether the directory exists."
	MsgConfigShort     = "Manage the configuration file"
	MsgConfigInitShort = "Write a sample configuration file"
	MsgConfigInitLong  = "Init writes a commented sample configuration to the default location. An existing file is never overwritten."
	MsgConfigShowShort = "Print the effective configuration as TOML"
	MsgConfigPathShort = "Print the configuration file path in use"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgConfigWritten = "Wrote sample configuration to %s\n"
	MsgConfigExists  = "Configuration already exists at %s, leaving it untouched\n"
	MsgVersionFormat = "shinydir version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default: $XDG_CONFIG_HOME/shinydir/shinydir.toml)"
	MsgFlagList    = "Print one '<source> <destination>' line per misplaced entry"
	MsgFlagDry     = "Run every check but move nothing"
	MsgFlagStdout  = "Print the sample to stdout instead of writing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/automove-long.txt
	msgAutoMoveLongRaw string
	MsgAutoMoveLong    = strings.TrimSpace(msgAutoMoveLongRaw)

	//go:embed msgs/automove-example.txt
	msgAutoMoveExampleRaw string
	MsgAutoMoveExample    = strings.TrimRight(msgAutoMoveExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
