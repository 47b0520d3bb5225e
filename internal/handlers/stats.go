package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/pkg/response"
	"github.com/google/uuid"
)

// StatsHandler serves per-game box scores and individual player box
// lines computed during simulation.
type StatsHandler struct {
	games *db.GameQueries
}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{games: &db.GameQueries{}}
}

// HandleGameStats handles GET /api/v1/stats/game/:id, returning every
// player's box line for that game.
func (h *StatsHandler) HandleGameStats(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/stats/game/")
	path = strings.Trim(path, "/")

	gameID, err := uuid.Parse(path)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_GAME_ID", "Game ID must be a valid UUID")
		return
	}

	simulated, err := h.games.GetSimulatedGameByScheduledID(r.Context(), gameID)
	if err != nil {
		log.Printf("Error getting game stats for %s: %v", gameID, err)
		response.InternalError(w, "Failed to retrieve game stats")
		return
	}
	if simulated == nil {
		response.NotFound(w, "Game stats")
		return
	}
	response.Success(w, simulated.BoxScore)
}

// HandlePlayerGameStats handles GET /api/v1/stats/game/:gameID/player/:playerID.
func (h *StatsHandler) HandlePlayerGameStats(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/stats/game/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[1] != "player" {
		response.Error(w, http.StatusBadRequest, "INVALID_PATH", "expected /stats/game/:gameID/player/:playerID")
		return
	}

	gameID, err := uuid.Parse(parts[0])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_GAME_ID", "Game ID must be a valid UUID")
		return
	}
	playerID, err := uuid.Parse(parts[2])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_PLAYER_ID", "Player ID must be a valid UUID")
		return
	}

	simulated, err := h.games.GetSimulatedGameByScheduledID(r.Context(), gameID)
	if err != nil {
		log.Printf("Error getting game stats for %s: %v", gameID, err)
		response.InternalError(w, "Failed to retrieve game stats")
		return
	}
	if simulated == nil || simulated.BoxScore == nil {
		response.NotFound(w, "Game stats")
		return
	}

	line, ok := simulated.BoxScore.Lines[playerID]
	if !ok {
		response.NotFound(w, "Player box line")
		return
	}
	response.Success(w, line)
}
