package roster

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/names"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// Resolver maps free-text player names onto exactly one roster entry.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver over the given roster.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve normalizes raw and looks it up. It fails with ErrPlayerNotFound when
// nothing matches and with an *AmbiguousError when more than one player does.
func (r *Resolver) Resolve(ctx context.Context, raw string) (tournament.Player, error) {
	query := names.Normalize(raw)
	if query == "" {
		return tournament.Player{}, fmt.Errorf("%w: empty name", ErrPlayerNotFound)
	}

	candidates, err := r.store.FindPlayers(ctx, query)
	if err != nil {
		return tournament.Player{}, fmt.Errorf("failed to look up %q: %w", raw, err)
	}

	switch len(candidates) {
	case 0:
		return tournament.Player{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, raw)
	case 1:
		log.Debug("Resolved player", "query", query, "player", candidates[0].Name)
		return candidates[0], nil
	}
	return tournament.Player{}, &AmbiguousError{Query: raw, Matches: candidates}
}
