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

// SeasonQueries handles Season persistence. A Season's schedule nests
// deeply (weeks -> games), so it is stored as a single JSONB document
// rather than normalized across tables, the way box_score and weather
// are nested JSON fields on simulated_games.
type SeasonQueries struct{}

// Current returns the most recently created season, or nil if none exists.
func (q *SeasonQueries) Current(ctx context.Context) (*models.Season, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	var doc []byte
	err := pool.QueryRow(ctx, `
		SELECT document FROM seasons ORDER BY season_number DESC LIMIT 1
	`).Scan(&doc)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current season: %w", err)
	}

	var season models.Season
	if err := json.Unmarshal(doc, &season); err != nil {
		return nil, fmt.Errorf("failed to decode season document: %w", err)
	}
	return &season, nil
}

// Save upserts a season by ID, keeping the document and the indexed
// season_number column in sync.
func (q *SeasonQueries) Save(ctx context.Context, season *models.Season) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	doc, err := json.Marshal(season)
	if err != nil {
		return fmt.Errorf("failed to encode season document: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO seasons (id, season_number, document)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			season_number = EXCLUDED.season_number,
			document = EXCLUDED.document
	`, season.ID, season.SeasonNumber, doc)
	if err != nil {
		return fmt.Errorf("failed to save season: %w", err)
	}
	return nil
}

// GetByID retrieves one season by ID, or nil if not found.
func (q *SeasonQueries) GetByID(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	var doc []byte
	err := pool.QueryRow(ctx, `SELECT document FROM seasons WHERE id = $1`, id).Scan(&doc)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get season %s: %w", id, err)
	}

	var season models.Season
	if err := json.Unmarshal(doc, &season); err != nil {
		return nil, fmt.Errorf("failed to decode season document: %w", err)
	}
	return &season, nil
}
