package resolver

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/logging"
	"github.com/arthur-debert/shinydir/pkg/paths"
	"github.com/arthur-debert/shinydir/pkg/rules"
)

// Move is a concrete source/destination pair. File never equals MoveTo.
type Move struct {
	File   string
	MoveTo string
}

// Resolve computes the Move for one misplaced entry of rule
func Resolve(ctx context.Context, rule *rules.Rule, entry rules.Entry) (Move, error) {
	logger := logging.GetLogger("resolver")

	if rule.Destination == nil {
		return Move{}, errors.Newf(errors.ErrInternal, "rule %s has no destination", rule.DisplayName())
	}

	fragment, err := rule.Destination.Resolve(ctx, entry)
	if err != nil {
		logger.Debug().Err(err).Str("file", entry.Path).Msg("Resolution failed")
		return Move{}, err
	}

	dir, err := paths.NormalizePath(fragment, rule.Directory)
	if err != nil {
		return Move{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid destination %q for %s", fragment, entry.Path)
	}

	move := Move{
		File:   entry.Path,
		MoveTo: filepath.Join(dir, entry.Name),
	}
	if move.File == move.MoveTo {
		return Move{}, errors.Newf(errors.ErrSamePath, "%s is already at its destination", entry.Path)
	}

	logger.Debug().
		Str("file", move.File).
		Str("move_to", move.MoveTo).
		Str("strategy", string(rule.Destination.Kind())).
		Msg("Resolved destination")

	return move, nil
}
