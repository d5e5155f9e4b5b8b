package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// New creates a results Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) ReplaceResults(ctx context.Context, t tournament.Tournament, results []tournament.TournamentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback is a no-op if the transaction is committed.

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tournaments (id, name, category, team_count, imported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			team_count = excluded.team_count,
			imported_at = excluded.imported_at
	`, t.ID, t.Name, int(t.Category), len(results), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert tournament %s: %w", t.ID, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tournament_results WHERE tournament_id = ?", t.ID); err != nil {
		return fmt.Errorf("failed to clear previous results: %w", err)
	}

	for _, res := range results {
		teamID, err := upsertTeam(ctx, tx, res.Team)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tournament_results
				(id, tournament_id, team_id, order_num, cup, cup_position, qualifying_wins, points, wins, losses)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.NewString(), t.ID, teamID, res.Team.OrderNum, string(res.Cup), string(res.CupPosition),
			res.QualifyingWins, res.Points, res.Wins, res.Losses)
		if err != nil {
			return fmt.Errorf("failed to insert result for %s: %w", res.Team.Label(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}
	log.Info("Stored tournament results", "tournament", t.ID, "results", len(results))
	return nil
}

// upsertTeam finds or creates the team row identified by the player set.
func upsertTeam(ctx context.Context, tx *sql.Tx, team tournament.TeamEntry) (string, error) {
	key := team.Key()
	_, err := tx.ExecContext(ctx, `
		INSERT INTO teams (id, team_key, label) VALUES (?, ?, ?)
		ON CONFLICT(team_key) DO UPDATE SET label = excluded.label
	`, uuid.NewString(), key, team.Label())
	if err != nil {
		return "", fmt.Errorf("failed to upsert team %s: %w", key, err)
	}

	var id string
	if err := tx.QueryRowContext(ctx, "SELECT id FROM teams WHERE team_key = ?", key).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to read team %s: %w", key, err)
	}

	for _, p := range team.Players {
		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO team_players (team_id, player_id) VALUES (?, ?)", id, p.ID); err != nil {
			return "", fmt.Errorf("failed to link player %s to team %s: %w", p.ID, key, err)
		}
	}
	return id, nil
}

func (s *store) GetTournament(ctx context.Context, id string) (tournament.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t tournament.Tournament
	var category int
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, category, team_count FROM tournaments WHERE id = ?", id,
	).Scan(&t.ID, &t.Name, &category, &t.TeamCount)
	if errors.Is(err, sql.ErrNoRows) {
		return tournament.Tournament{}, fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
	}
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("failed to get tournament %s: %w", id, err)
	}
	t.Category = tournament.Category(category)
	return t, nil
}

// GetResults returns the stored results of a tournament in registration order.
func (s *store) GetResults(ctx context.Context, tournamentID string) ([]tournament.TournamentResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.team_id, t.team_key, r.order_num, r.cup, r.cup_position, r.qualifying_wins, r.points, r.wins, r.losses
		FROM tournament_results r
		JOIN teams t ON t.id = r.team_id
		WHERE r.tournament_id = ?
		ORDER BY r.order_num
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []tournament.TournamentResult
	teamIndex := make(map[string]int)
	for rows.Next() {
		var (
			res    tournament.TournamentResult
			teamID string
			cup    string
			pos    string
		)
		if err := rows.Scan(&teamID, &res.TeamKey, &res.Team.OrderNum, &cup, &pos,
			&res.QualifyingWins, &res.Points, &res.Wins, &res.Losses); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		res.Cup = tournament.Cup(cup)
		res.CupPosition = tournament.CupPosition(pos)
		teamIndex[teamID] = len(results)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return results, nil
	}

	players, err := s.db.QueryContext(ctx, `
		SELECT tp.team_id, p.id, p.name, COALESCE(p.gender, '')
		FROM team_players tp
		JOIN players p ON p.id = tp.player_id
		JOIN tournament_results r ON r.team_id = tp.team_id
		WHERE r.tournament_id = ?
		ORDER BY p.id
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team players: %w", err)
	}
	defer players.Close()

	for players.Next() {
		var teamID string
		var p tournament.Player
		if err := players.Scan(&teamID, &p.ID, &p.Name, &p.Gender); err != nil {
			return nil, fmt.Errorf("failed to scan team player: %w", err)
		}
		if i, ok := teamIndex[teamID]; ok {
			results[i].Team.Players = append(results[i].Team.Players, p)
		}
	}
	return results, players.Err()
}
