package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gridiron-sim/core/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TeamQueries handles team and roster persistence.
type TeamQueries struct{}

// List retrieves all teams, ordered by name.
func (q *TeamQueries) List(ctx context.Context) ([]models.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT id, name, abbreviation, city, conference, division,
		       primary_color, secondary_color, dome
		FROM teams
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Abbreviation, &t.City, &t.Conference,
			&t.Division, &t.PrimaryColor, &t.SecondaryColor, &t.Dome); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// GetByID retrieves a single team by ID, or nil if not found.
func (q *TeamQueries) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	var t models.Team
	err := pool.QueryRow(ctx, `
		SELECT id, name, abbreviation, city, conference, division,
		       primary_color, secondary_color, dome
		FROM teams
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Abbreviation, &t.City, &t.Conference,
		&t.Division, &t.PrimaryColor, &t.SecondaryColor, &t.Dome)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &t, nil
}

// UpsertTeam inserts or updates a team by ID.
func (q *TeamQueries) UpsertTeam(ctx context.Context, t models.Team) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO teams (id, name, abbreviation, city, conference, division,
		                    primary_color, secondary_color, dome)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			abbreviation = EXCLUDED.abbreviation,
			city = EXCLUDED.city,
			conference = EXCLUDED.conference,
			division = EXCLUDED.division,
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			dome = EXCLUDED.dome
	`, t.ID, t.Name, t.Abbreviation, t.City, t.Conference, t.Division,
		t.PrimaryColor, t.SecondaryColor, t.Dome)
	if err != nil {
		return fmt.Errorf("failed to upsert team: %w", err)
	}
	return nil
}

// GetRoster retrieves every player on a team's roster, whatever their
// status (callers filter with Roster.Active). Ratings are stored as a
// single JSONB column and always decoded as a whole Ratings struct.
func (q *TeamQueries) GetRoster(ctx context.Context, teamID uuid.UUID) (models.Roster, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return models.Roster{}, fmt.Errorf("database connection not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT id, name, position, jersey_number, ratings, status
		FROM players
		WHERE team_id = $1
		ORDER BY jersey_number, name
	`, teamID)
	if err != nil {
		return models.Roster{}, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	roster := models.Roster{TeamID: teamID}
	for rows.Next() {
		var p models.Player
		var ratingsJSON []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.JerseyNumber, &ratingsJSON, &p.Status); err != nil {
			return models.Roster{}, fmt.Errorf("failed to scan player: %w", err)
		}
		if err := json.Unmarshal(ratingsJSON, &p.Ratings); err != nil {
			return models.Roster{}, fmt.Errorf("failed to decode ratings for player %s: %w", p.ID, err)
		}
		roster.Players = append(roster.Players, p)
	}
	return roster, nil
}

// SaveRoster replaces a team's roster with the given players.
func (q *TeamQueries) SaveRoster(ctx context.Context, roster models.Roster) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin roster transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM players WHERE team_id = $1`, roster.TeamID); err != nil {
		return fmt.Errorf("failed to clear existing roster: %w", err)
	}

	for _, p := range roster.Players {
		ratingsJSON, err := json.Marshal(p.Ratings)
		if err != nil {
			return fmt.Errorf("failed to encode ratings for player %s: %w", p.ID, err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO players (id, team_id, name, position, jersey_number, ratings, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ID, roster.TeamID, p.Name, p.Position, p.JerseyNumber, ratingsJSON, p.Status); err != nil {
			return fmt.Errorf("failed to insert player %s: %w", p.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// GetTeamsByIDs batch-loads teams to avoid N+1 queries when hydrating a
// week's worth of scheduled games.
func (q *TeamQueries) GetTeamsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Team, error) {
	result := make(map[uuid.UUID]models.Team, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT id, name, abbreviation, city, conference, division,
		       primary_color, secondary_color, dome
		FROM teams
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to batch query teams: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Abbreviation, &t.City, &t.Conference,
			&t.Division, &t.PrimaryColor, &t.SecondaryColor, &t.Dome); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		result[t.ID] = t
	}
	return result, nil
}
