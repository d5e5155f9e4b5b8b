package notifier

import "github.com/mauv0809/petanque-ratings/internal/tournament"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a workbook was parsed and scored
	SendImportSummary(t tournament.Tournament, results []tournament.TournamentResult, dryRun bool) error
	// After a workbook was rejected
	SendImportFailure(tournamentName string, problems []string, dryRun bool) error

	// Slash command responses
	FormatResultsResponse(t tournament.Tournament, results []tournament.TournamentResult) (any, error)
	FormatTournamentNotFoundResponse(query string) (any, error)
}
