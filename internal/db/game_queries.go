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

// GameQueries handles SimulatedGame persistence and ScheduledGame status
// transitions within a season's document.
type GameQueries struct{}

// SaveSimulatedGame persists the full play-by-play record as a JSONB
// document, the way box_score/weather were already nested JSON on the
// legacy games table — the whole SimulatedGame is the natural unit here
// since nothing queries into individual plays relationally.
func (q *GameQueries) SaveSimulatedGame(ctx context.Context, scheduledGameID uuid.UUID, game *models.SimulatedGame) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	doc, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to encode simulated game: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO simulated_games (id, scheduled_game_id, document)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document
	`, game.ID, scheduledGameID, doc)
	if err != nil {
		return fmt.Errorf("failed to save simulated game: %w", err)
	}
	return nil
}

// GetSimulatedGame retrieves a simulated game's full record by its own ID.
func (q *GameQueries) GetSimulatedGame(ctx context.Context, id uuid.UUID) (*models.SimulatedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	var doc []byte
	err := pool.QueryRow(ctx, `SELECT document FROM simulated_games WHERE id = $1`, id).Scan(&doc)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get simulated game %s: %w", id, err)
	}

	var game models.SimulatedGame
	if err := json.Unmarshal(doc, &game); err != nil {
		return nil, fmt.Errorf("failed to decode simulated game: %w", err)
	}
	return &game, nil
}

// GetSimulatedGameByScheduledID retrieves the simulated result tied to a
// given ScheduledGame, or nil if that game hasn't been simulated yet.
func (q *GameQueries) GetSimulatedGameByScheduledID(ctx context.Context, scheduledGameID uuid.UUID) (*models.SimulatedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	var doc []byte
	err := pool.QueryRow(ctx, `
		SELECT document FROM simulated_games WHERE scheduled_game_id = $1
	`, scheduledGameID).Scan(&doc)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get simulated game for scheduled game %s: %w", scheduledGameID, err)
	}

	var game models.SimulatedGame
	if err := json.Unmarshal(doc, &game); err != nil {
		return nil, fmt.Errorf("failed to decode simulated game: %w", err)
	}
	return &game, nil
}

// UpdateScheduledGameStatus finds the named game inside a season's
// schedule document and transitions its status (and score, once
// complete), then re-saves the season. Season documents are small enough
// (22 weeks, at most ~16 games each) that read-modify-write is simpler and safer
// than a normalized games table here.
func UpdateScheduledGameStatus(ctx context.Context, season *models.Season, gameID uuid.UUID, status models.ScheduledGameStatus, homeScore, awayScore *int) error {
	found := false
	for wi := range season.Schedule {
		for gi := range season.Schedule[wi].Games {
			g := &season.Schedule[wi].Games[gi]
			if g.ID != gameID {
				continue
			}
			g.Status = status
			if homeScore != nil {
				g.HomeScore = homeScore
			}
			if awayScore != nil {
				g.AwayScore = awayScore
			}
			found = true
		}
		season.Schedule[wi].Status = season.Schedule[wi].DeriveStatus()
	}
	if !found {
		return fmt.Errorf("scheduled game %s not found in season %s", gameID, season.ID)
	}

	seasonQueries := &SeasonQueries{}
	return seasonQueries.Save(ctx, season)
}
