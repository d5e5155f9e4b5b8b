package results

import (
	"context"
	"fmt"
	"sync"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// MockStore is a mock implementation of the Store interface for testing.
// Without the func fields it keeps results in memory.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	Tournaments map[string]tournament.Tournament
	Results     map[string][]tournament.TournamentResult

	// Spies for method calls
	ReplaceResultsFunc func(ctx context.Context, t tournament.Tournament, results []tournament.TournamentResult) error
	GetTournamentFunc  func(ctx context.Context, id string) (tournament.Tournament, error)
	GetResultsFunc     func(ctx context.Context, tournamentID string) ([]tournament.TournamentResult, error)

	// Call records
	ReplaceResultsCalls []struct {
		Tournament tournament.Tournament
		Results    []tournament.TournamentResult
	}
}

// NewMock creates a new empty mock store.
func NewMock() *MockStore {
	return &MockStore{
		Tournaments: make(map[string]tournament.Tournament),
		Results:     make(map[string][]tournament.TournamentResult),
	}
}

func (m *MockStore) ReplaceResults(ctx context.Context, t tournament.Tournament, results []tournament.TournamentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceResultsCalls = append(m.ReplaceResultsCalls, struct {
		Tournament tournament.Tournament
		Results    []tournament.TournamentResult
	}{t, results})
	if m.ReplaceResultsFunc != nil {
		return m.ReplaceResultsFunc(ctx, t, results)
	}
	t.TeamCount = len(results)
	m.Tournaments[t.ID] = t
	m.Results[t.ID] = results
	return nil
}

func (m *MockStore) GetTournament(ctx context.Context, id string) (tournament.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(ctx, id)
	}
	t, ok := m.Tournaments[id]
	if !ok {
		return tournament.Tournament{}, fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
	}
	return t, nil
}

func (m *MockStore) GetResults(ctx context.Context, tournamentID string) ([]tournament.TournamentResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetResultsFunc != nil {
		return m.GetResultsFunc(ctx, tournamentID)
	}
	return m.Results[tournamentID], nil
}
