package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/pkg/response"
	"github.com/google/uuid"
)

// GamesHandler serves the current season's scheduled games and their
// simulated box scores.
type GamesHandler struct {
	seasons *db.SeasonQueries
	games   *db.GameQueries
}

func NewGamesHandler() *GamesHandler {
	return &GamesHandler{
		seasons: &db.SeasonQueries{},
		games:   &db.GameQueries{},
	}
}

// HandleGames handles GET /api/v1/games (optionally ?week=N), GET
// /api/v1/games/:id, and GET /api/v1/games/:id/boxscore.
func (h *GamesHandler) HandleGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET method is allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/games")
	path = strings.Trim(path, "/")

	if path == "" {
		h.listGames(w, r)
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) >= 2 && parts[1] == "boxscore" {
		h.getBoxScore(w, r, parts[0])
		return
	}
	h.getGame(w, r, parts[0])
}

func (h *GamesHandler) listGames(w http.ResponseWriter, r *http.Request) {
	season, err := h.seasons.Current(r.Context())
	if err != nil {
		log.Printf("Error loading current season: %v", err)
		response.InternalError(w, "Failed to retrieve current season")
		return
	}
	if season == nil {
		response.NotFound(w, "Season")
		return
	}

	week := season.CurrentWeek
	if weekStr := r.URL.Query().Get("week"); weekStr != "" {
		parsed, err := strconv.Atoi(weekStr)
		if err != nil || parsed < 1 || parsed > models.TotalSeasonWeeks {
			response.Error(w, http.StatusBadRequest, "INVALID_WEEK", "week must be between 1 and 22")
			return
		}
		week = parsed
	}

	idx := week - 1
	if idx < 0 || idx >= len(season.Schedule) {
		response.Success(w, []models.ScheduledGame{})
		return
	}
	response.Success(w, season.Schedule[idx].Games)
}

func (h *GamesHandler) getGame(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_ID", "Game ID must be a valid UUID")
		return
	}

	game, err := h.findScheduledGame(r, id)
	if err != nil {
		log.Printf("Error getting game %s: %v", id, err)
		response.InternalError(w, "Failed to retrieve game")
		return
	}
	if game == nil {
		response.NotFound(w, "Game")
		return
	}
	response.Success(w, game)
}

func (h *GamesHandler) getBoxScore(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_ID", "Game ID must be a valid UUID")
		return
	}

	simulated, err := h.games.GetSimulatedGameByScheduledID(r.Context(), id)
	if err != nil {
		log.Printf("Error getting box score for game %s: %v", id, err)
		response.InternalError(w, "Failed to retrieve box score")
		return
	}
	if simulated == nil {
		response.NotFound(w, "Box score")
		return
	}
	response.Success(w, simulated.BoxScore)
}

func (h *GamesHandler) findScheduledGame(r *http.Request, id uuid.UUID) (*models.ScheduledGame, error) {
	season, err := h.seasons.Current(r.Context())
	if err != nil || season == nil {
		return nil, err
	}
	for _, week := range season.Schedule {
		for i := range week.Games {
			if week.Games[i].ID == id {
				return &week.Games[i], nil
			}
		}
	}
	return nil, nil
}
