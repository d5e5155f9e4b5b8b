package roster

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/petanque-ratings/internal/names"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// New creates a roster Store backed by the players table.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// FindPlayers narrows candidates with LIKE and then keeps only whole-token
// matches.
func (s *store) FindPlayers(ctx context.Context, query string) ([]tournament.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, normalized_name, COALESCE(gender, '')
		FROM players
		WHERE normalized_name LIKE '%' || ? || '%'
		ORDER BY name
	`, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []tournament.Player
	for rows.Next() {
		var p tournament.Player
		var normalized string
		if err := rows.Scan(&p.ID, &p.Name, &normalized, &p.Gender); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		if MatchesToken(normalized, query) {
			players = append(players, p)
		}
	}
	return players, rows.Err()
}

// AddPlayer registers a new roster entry.
func (s *store) AddPlayer(ctx context.Context, name, gender string) (tournament.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := tournament.Player{
		ID:     uuid.NewString(),
		Name:   name,
		Gender: gender,
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO players (id, name, normalized_name, gender, created_at) VALUES (?, ?, ?, ?, ?)",
		player.ID, player.Name, names.Normalize(name), nullable(gender), time.Now().Unix(),
	)
	if err != nil {
		return tournament.Player{}, fmt.Errorf("failed to add player %q: %w", name, err)
	}
	log.Debug("Added player", "id", player.ID, "name", player.Name)
	return player, nil
}

// GetAllPlayers returns the whole roster ordered by name.
func (s *store) GetAllPlayers(ctx context.Context) ([]tournament.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, COALESCE(gender, '') FROM players ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []tournament.Player
	for rows.Next() {
		var p tournament.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Gender); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
