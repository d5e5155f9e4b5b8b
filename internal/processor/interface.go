package processor

import (
	"context"

	"github.com/mauv0809/petanque-ratings/internal/notifier"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

// Store defines the database operations required by the processor.
type Store interface {
	ReplaceResults(ctx context.Context, t tournament.Tournament, results []tournament.TournamentResult) error
}

// Parser extracts tournament data from a workbook.
type Parser interface {
	Parse(ctx context.Context, wb *workbook.Workbook) (*tournament.ParsedTournament, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
