package plan

import (
	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/paths"
	"github.com/arthur-debert/shinydir/pkg/resolver"
	"github.com/arthur-debert/shinydir/pkg/rules"
)

// RulesFromConfig builds the rule set for a run.
// When target is non-empty only rules whose directory lies at or below the
// canonicalized target are kept; a target that cannot be canonicalized is fatal.
func RulesFromConfig(cfg *config.Config, target string) ([]*rules.Rule, error) {
	logger := logging.GetLogger("plan")

	canonicalTarget := ""
	if target != "" {
		var err error
		canonicalTarget, err = paths.CanonicalizeExisting(target)
		if err != nil {
			return nil, err
		}
	}

	var out []*rules.Rule
	for i, def := range cfg.AutoMove.Rules {
		rule, err := BuildRule(def, cfg.Dir())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "automove.rules[%d]", i)
		}

		if canonicalTarget != "" && !paths.IsUnder(rule.Directory, canonicalTarget) {
			logger.Debug().
				Str("rule", rule.DisplayName()).
				Str("target", canonicalTarget).
				Msg("Rule outside target, skipping")
			continue
		}
		out = append(out, rule)
	}

	return out, nil
}

// BuildRule turns one rule definition into a Rule. Relative directories and
// script paths resolve against configDir.
func BuildRule(def config.Rule, configDir string) (*rules.Rule, error) {
	dir, err := paths.Canonicalize(def.Dir, configDir)
	if err != nil {
		return nil, err
	}

	matcher, err := rules.NewPatternMatcher(def.Keep, def.KeepRegex, def.KeepDirectories(), def.KeepHiddenEntries())
	if err != nil {
		return nil, err
	}

	destination, err := buildDestination(def, configDir)
	if err != nil {
		return nil, err
	}

	return &rules.Rule{
		Directory:   dir,
		CustomName:  def.Name,
		Matcher:     matcher,
		Destination: destination,
	}, nil
}

func buildDestination(def config.Rule, configDir string) (rules.Destination, error) {
	if def.ToScript != "" {
		return resolver.NewScriptDestination(def.ToScript, configDir)
	}

	var fallback *resolver.StaticDestination
	if def.To != "" {
		static, err := resolver.NewStaticDestination(def.To)
		if err != nil {
			return nil, err
		}
		if len(def.Routes) == 0 {
			return static, nil
		}
		fallback = static
	}

	if len(def.Routes) == 0 {
		return nil, errors.New(errors.ErrConfigValid, "rule has no destination")
	}

	routes := make([]resolver.Route, 0, len(def.Routes))
	for _, r := range def.Routes {
		route, err := resolver.NewRoute(r.Pattern, r.Regex, r.To)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return &resolver.PatternDestination{Routes: routes, Fallback: fallback}, nil
}
