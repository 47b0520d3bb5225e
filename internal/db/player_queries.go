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

// PlayerQueries handles individual player lookups, independent of which
// team's roster they currently belong to.
type PlayerQueries struct{}

// GetByID retrieves a single player by ID, or nil if not found.
func (q *PlayerQueries) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	var p models.Player
	var ratingsJSON []byte
	err := pool.QueryRow(ctx, `
		SELECT id, name, position, jersey_number, ratings, status
		FROM players
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Position, &p.JerseyNumber, &ratingsJSON, &p.Status)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if err := json.Unmarshal(ratingsJSON, &p.Ratings); err != nil {
		return nil, fmt.Errorf("failed to decode ratings for player %s: %w", id, err)
	}
	return &p, nil
}
