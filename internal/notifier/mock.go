package notifier

import (
	"sync"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendImportSummaryCalls []struct {
		Tournament tournament.Tournament
		Results    []tournament.TournamentResult
		DryRun     bool
	}
	SendImportFailureCalls []struct {
		TournamentName string
		Problems       []string
		DryRun         bool
	}

	// Spies for method calls
	SendImportSummaryFunc func(t tournament.Tournament, results []tournament.TournamentResult, dryRun bool) error
	SendImportFailureFunc func(tournamentName string, problems []string, dryRun bool) error

	FormatResultsResponseFunc            func(t tournament.Tournament, results []tournament.TournamentResult) (any, error)
	FormatTournamentNotFoundResponseFunc func(query string) (any, error)
}

// NewMock creates a new mock notifier.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendImportSummary(t tournament.Tournament, results []tournament.TournamentResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendImportSummaryCalls = append(m.SendImportSummaryCalls, struct {
		Tournament tournament.Tournament
		Results    []tournament.TournamentResult
		DryRun     bool
	}{t, results, dryRun})
	if m.SendImportSummaryFunc != nil {
		return m.SendImportSummaryFunc(t, results, dryRun)
	}
	return nil
}

func (m *Mock) SendImportFailure(tournamentName string, problems []string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendImportFailureCalls = append(m.SendImportFailureCalls, struct {
		TournamentName string
		Problems       []string
		DryRun         bool
	}{tournamentName, problems, dryRun})
	if m.SendImportFailureFunc != nil {
		return m.SendImportFailureFunc(tournamentName, problems, dryRun)
	}
	return nil
}

func (m *Mock) FormatResultsResponse(t tournament.Tournament, results []tournament.TournamentResult) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatResultsResponseFunc != nil {
		return m.FormatResultsResponseFunc(t, results)
	}
	return "formatted_results", nil
}

func (m *Mock) FormatTournamentNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatTournamentNotFoundResponseFunc != nil {
		return m.FormatTournamentNotFoundResponseFunc(query)
	}
	return "formatted_not_found", nil
}
