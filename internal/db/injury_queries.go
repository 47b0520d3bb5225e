package db

import (
	"context"
	"fmt"
	"time"

	"github.com/gridiron-sim/core/internal/models"
	"github.com/google/uuid"
)

// InjuryQueries handles InjuryLogEntry persistence.
type InjuryQueries struct{}

// Insert records one injury event. Entries are append-only — a game's
// injury log is never edited, only added to as the resolver emits them.
func (q *InjuryQueries) Insert(ctx context.Context, entry models.InjuryLogEntry) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO injury_log (id, game_id, player_id, team_id, severity, description, event_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.GameID, entry.PlayerID, entry.TeamID, entry.Severity, entry.Description, entry.EventNumber)
	if err != nil {
		return fmt.Errorf("failed to insert injury log entry: %w", err)
	}
	return nil
}

// ListByGame returns every injury recorded during one simulated game, in
// the order the plays that caused them occurred.
func (q *InjuryQueries) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.InjuryLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT id, game_id, player_id, team_id, severity, description, event_number
		FROM injury_log
		WHERE game_id = $1
		ORDER BY event_number
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query injuries for game %s: %w", gameID, err)
	}
	defer rows.Close()

	return scanInjuries(rows)
}

// ListByPlayer returns a player's full injury history across every game
// they have appeared in, ordered by entry ID descending. Entry IDs are
// random UUIDs, so this order does not follow when the injuries happened.
func (q *InjuryQueries) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.InjuryLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT id, game_id, player_id, team_id, severity, description, event_number
		FROM injury_log
		WHERE player_id = $1
		ORDER BY id DESC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query injuries for player %s: %w", playerID, err)
	}
	defer rows.Close()

	return scanInjuries(rows)
}

// ListByTeam returns every injury recorded against a team's players.
func (q *InjuryQueries) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.InjuryLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT id, game_id, player_id, team_id, severity, description, event_number
		FROM injury_log
		WHERE team_id = $1
		ORDER BY id DESC
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query injuries for team %s: %w", teamID, err)
	}
	defer rows.Close()

	return scanInjuries(rows)
}

func scanInjuries(rows interface {
	Next() bool
	Scan(dest ...any) error
}) ([]models.InjuryLogEntry, error) {
	entries := []models.InjuryLogEntry{}
	for rows.Next() {
		var e models.InjuryLogEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.PlayerID, &e.TeamID, &e.Severity, &e.Description, &e.EventNumber); err != nil {
			return nil, fmt.Errorf("failed to scan injury log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
