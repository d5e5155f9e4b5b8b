package results

import (
	"context"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// Store persists scored tournament results.
type Store interface {
	// ReplaceResults stores t and swaps its previous result set for results
	// in a single transaction.
	ReplaceResults(ctx context.Context, t tournament.Tournament, results []tournament.TournamentResult) error
	GetTournament(ctx context.Context, id string) (tournament.Tournament, error)
	GetResults(ctx context.Context, tournamentID string) ([]tournament.TournamentResult, error)
}
