package roster

import (
	"context"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// Store is the roster lookup the engine depends on.
type Store interface {
	// FindPlayers returns the players whose normalized name contains query as
	// a whole-token substring. query must already be normalized.
	FindPlayers(ctx context.Context, query string) ([]tournament.Player, error)
	AddPlayer(ctx context.Context, name, gender string) (tournament.Player, error)
	GetAllPlayers(ctx context.Context) ([]tournament.Player, error)
}
