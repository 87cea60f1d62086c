package resolver

import (
	"context"
	"regexp"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/rules"
)

// Route sends entries matching a glob or a regex to a directory
type Route struct {
	Glob  string
	Regex *regexp.Regexp
	To    string
}

// NewRoute validates a route definition. Exactly one of glob and regex must be set.
func NewRoute(glob, regex, to string) (Route, error) {
	if to == "" {
		return Route{}, errors.New(errors.ErrConfigValid, "route needs a destination (to)")
	}

	switch {
	case glob != "" && regex != "":
		return Route{}, errors.New(errors.ErrConfigValid, "route cannot have both pattern and regex")
	case glob != "":
		if err := rules.ValidatePattern(glob); err != nil {
			return Route{}, err
		}
		return Route{Glob: glob, To: to}, nil
	case regex != "":
		re, err := regexp.Compile(regex)
		if err != nil {
			return Route{}, errors.Wrapf(err, errors.ErrConfigValid, "invalid route regex %q", regex)
		}
		return Route{Regex: re, To: to}, nil
	default:
		return Route{}, errors.New(errors.ErrConfigValid, "route needs a pattern or a regex")
	}
}

// match returns the expanded destination when the route applies to entry
func (r Route) match(entry rules.Entry) (string, bool) {
	if r.Regex != nil {
		indexes := r.Regex.FindStringSubmatchIndex(entry.Name)
		if indexes == nil {
			return "", false
		}
		expanded := r.Regex.ExpandString(nil, r.To, entry.Name, indexes)
		return expandPlaceholders(string(expanded), entry), true
	}

	if rules.MatchPattern(entry.Name, entry.IsDir, r.Glob) {
		return expandPlaceholders(r.To, entry), true
	}
	return "", false
}

// PatternDestination tries routes in order; the first match wins.
// Entries no route matches go to Fallback, or fail with ErrNoRoute without one.
type PatternDestination struct {
	Routes   []Route
	Fallback *StaticDestination
}

// Kind implements rules.Destination
func (p *PatternDestination) Kind() rules.Kind {
	return rules.KindPattern
}

// Resolve implements rules.Destination
func (p *PatternDestination) Resolve(ctx context.Context, entry rules.Entry) (string, error) {
	for _, route := range p.Routes {
		if to, ok := route.match(entry); ok {
			return to, nil
		}
	}

	if p.Fallback != nil {
		return p.Fallback.Resolve(ctx, entry)
	}

	return "", errors.Newf(errors.ErrNoRoute, "no route matches %s", entry.Path)
}
