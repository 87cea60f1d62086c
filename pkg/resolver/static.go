package resolver

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/rules"
)

// StaticDestination sends every entry to the same directory.
// To may contain the {name}, {stem} and {ext} placeholders.
type StaticDestination struct {
	To string
}

// NewStaticDestination validates to and builds the strategy
func NewStaticDestination(to string) (*StaticDestination, error) {
	if strings.TrimSpace(to) == "" {
		return nil, errors.New(errors.ErrConfigValid, "destination cannot be empty")
	}
	return &StaticDestination{To: to}, nil
}

// Kind implements rules.Destination
func (s *StaticDestination) Kind() rules.Kind {
	return rules.KindStatic
}

// Resolve implements rules.Destination
func (s *StaticDestination) Resolve(_ context.Context, entry rules.Entry) (string, error) {
	return expandPlaceholders(s.To, entry), nil
}

// expandPlaceholders substitutes {name}, {stem} and {ext} from the entry name
func expandPlaceholders(template string, entry rules.Entry) string {
	if !strings.Contains(template, "{") {
		return template
	}

	ext := ""
	if !entry.IsDir {
		ext = filepath.Ext(entry.Name)
	}
	stem := strings.TrimSuffix(entry.Name, ext)

	replacer := strings.NewReplacer(
		"{name}", entry.Name,
		"{stem}", stem,
		"{ext}", strings.TrimPrefix(ext, "."),
	)
	return replacer.Replace(template)
}
