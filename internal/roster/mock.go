package roster

import (
	"context"
	"sync"

	"github.com/mauv0809/petanque-ratings/internal/names"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// MockStore is a mock implementation of the Store interface for testing.
// Without FindPlayersFunc it searches Players the same way the real store does.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	Players []tournament.Player

	// Spies for method calls
	FindPlayersFunc   func(ctx context.Context, query string) ([]tournament.Player, error)
	AddPlayerFunc     func(ctx context.Context, name, gender string) (tournament.Player, error)
	GetAllPlayersFunc func(ctx context.Context) ([]tournament.Player, error)

	// Call records
	FindPlayersCalls []string
	AddPlayerCalls   []struct {
		Name   string
		Gender string
	}
}

// NewMock creates a new mock roster seeded with players.
func NewMock(players ...tournament.Player) *MockStore {
	return &MockStore{Players: players}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindPlayersCalls = nil
	m.AddPlayerCalls = nil
}

func (m *MockStore) FindPlayers(ctx context.Context, query string) ([]tournament.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindPlayersCalls = append(m.FindPlayersCalls, query)
	if m.FindPlayersFunc != nil {
		return m.FindPlayersFunc(ctx, query)
	}
	var found []tournament.Player
	for _, p := range m.Players {
		if MatchesToken(names.Normalize(p.Name), query) {
			found = append(found, p)
		}
	}
	return found, nil
}

func (m *MockStore) AddPlayer(ctx context.Context, name, gender string) (tournament.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, struct {
		Name   string
		Gender string
	}{name, gender})
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(ctx, name, gender)
	}
	player := tournament.Player{ID: name, Name: name, Gender: gender}
	m.Players = append(m.Players, player)
	return player, nil
}

func (m *MockStore) GetAllPlayers(ctx context.Context) ([]tournament.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc(ctx)
	}
	return append([]tournament.Player(nil), m.Players...), nil
}
