package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"mvdan.cc/sh/v3/shell"
)

// Validate checks every rule definition. The first problem found is returned
// as a CONFIG_INVALID error naming the offending rule.
func Validate(cfg *Config) error {
	for i, rule := range cfg.AutoMove.Rules {
		if err := validateRule(rule); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "automove.rules[%d] (%s)", i, ruleLabel(rule)).
				WithDetail("rule", i)
		}
	}
	return nil
}

func ruleLabel(rule Rule) string {
	switch {
	case rule.Name != "":
		return rule.Name
	case rule.Dir != "":
		return rule.Dir
	default:
		return "unnamed"
	}
}

func validateRule(rule Rule) error {
	if strings.TrimSpace(rule.Dir) == "" {
		return fmt.Errorf("dir is required")
	}

	hasStatic := rule.To != ""
	hasRoutes := len(rule.Routes) > 0
	hasScript := strings.TrimSpace(rule.ToScript) != ""

	switch {
	case !hasStatic && !hasRoutes && !hasScript:
		return fmt.Errorf("one of to, routes or to_script is required")
	case hasScript && (hasStatic || hasRoutes):
		return fmt.Errorf("to_script cannot be combined with to or routes")
	}

	for _, pattern := range rule.Keep {
		if err := rules.ValidatePattern(pattern); err != nil {
			return fmt.Errorf("keep: %s", errors.Describe(err))
		}
	}
	for _, expr := range rule.KeepRegex {
		if _, err := regexp.Compile(expr); err != nil {
			return fmt.Errorf("keep_regex %q: %w", expr, err)
		}
	}

	for j, route := range rule.Routes {
		if err := validateRoute(route); err != nil {
			return fmt.Errorf("routes[%d]: %w", j, err)
		}
	}

	if hasScript {
		if _, err := shell.Fields(rule.ToScript, nil); err != nil {
			return fmt.Errorf("to_script %q: %w", rule.ToScript, err)
		}
	}

	return nil
}

func validateRoute(route Route) error {
	if route.To == "" {
		return fmt.Errorf("to is required")
	}

	switch {
	case route.Pattern != "" && route.Regex != "":
		return fmt.Errorf("pattern and regex are mutually exclusive")
	case route.Pattern != "":
		if err := rules.ValidatePattern(route.Pattern); err != nil {
			return fmt.Errorf("pattern: %s", errors.Describe(err))
		}
	case route.Regex != "":
		if _, err := regexp.Compile(route.Regex); err != nil {
			return fmt.Errorf("regex %q: %w", route.Regex, err)
		}
	default:
		return fmt.Errorf("one of pattern or regex is required")
	}

	return nil
}
