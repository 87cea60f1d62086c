// Package rules lists the configured rules with their resolved directories.
package rules

import (
	"os"
	"strings"

	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/paths"
	"github.com/arthur-debert/shinydir/pkg/plan"
	rulemodel "github.com/arthur-debert/shinydir/pkg/rules"
)

// ListRulesOptions contains options for the rules command
type ListRulesOptions struct {
	Config *config.Config
	Target string

	// FileSystem to use (defaults to OS filesystem)
	FileSystem filesystem.FS
}

// RuleInfo describes one configured rule
type RuleInfo struct {
	Name      string
	Directory string
	Strategy  rulemodel.Kind
	Keep      []string
	Exists    bool
}

// ListRulesResult holds the rules in declaration order
type ListRulesResult struct {
	Rules []RuleInfo
}

// ListRules describes the configured rules
func ListRules(opts ListRulesOptions) (*ListRulesResult, error) {
	logger := logging.GetLogger("commands.rules")

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}

	ruleList, err := plan.RulesFromConfig(opts.Config, opts.Target)
	if err != nil {
		return nil, err
	}

	result := &ListRulesResult{Rules: make([]RuleInfo, 0, len(ruleList))}
	for _, rule := range ruleList {
		info := RuleInfo{
			Name:      rule.DisplayName(),
			Directory: paths.ContractHome(rule.Directory),
			Strategy:  rule.Destination.Kind(),
			Keep:      keepSummary(rule),
		}

		stat, err := opts.FileSystem.Stat(rule.Directory)
		switch {
		case err == nil:
			info.Exists = stat.IsDir()
		case !os.IsNotExist(err):
			logger.Warn().Err(err).Str("rule", info.Name).Msg("Could not stat rule directory")
		}

		result.Rules = append(result.Rules, info)
	}

	return result, nil
}

// keepSummary lists what a pattern matcher leaves in place
func keepSummary(rule *rulemodel.Rule) []string {
	matcher, ok := rule.Matcher.(*rulemodel.PatternMatcher)
	if !ok {
		return nil
	}

	keep := append([]string{}, matcher.Globs...)
	for _, re := range matcher.Regexes {
		keep = append(keep, "/"+re.String()+"/")
	}
	if matcher.KeepDirs {
		keep = append(keep, "dirs")
	}
	if matcher.KeepHidden {
		keep = append(keep, "hidden")
	}
	return keep
}

// Join renders a keep list for display
func Join(keep []string) string {
	return strings.Join(keep, " ")
}
