package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gridiron-sim/core/internal/cache"
	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/internal/engine"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/pkg/response"
	"github.com/google/uuid"
)

// AdminHandler exposes manual operator actions that drive the pure
// simulation core directly: re-simulating a scheduled game, forcing a
// cache flush, and minting API keys for external consumers.
type AdminHandler struct {
	seasons     *db.SeasonQueries
	teams       *db.TeamQueries
	games       *db.GameQueries
	invalidator *cache.InvalidationManager
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		seasons:     &db.SeasonQueries{},
		teams:       &db.TeamQueries{},
		games:       &db.GameQueries{},
		invalidator: cache.NewInvalidationManager(),
	}
}

// HandleResimulateGame handles POST /admin/games/:id/resimulate. It
// re-runs the deterministic engine against a scheduled game with a
// freshly generated server seed and the request body's client_seed
// (defaulting to the game ID), overwriting any prior result.
func (h *AdminHandler) HandleResimulateGame(w http.ResponseWriter, r *http.Request, idStr string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gameID, err := uuid.Parse(idStr)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_GAME_ID", "Game ID must be a valid UUID")
		return
	}

	var reqBody struct {
		ClientSeed string `json:"client_seed"`
	}
	_ = json.NewDecoder(r.Body).Decode(&reqBody)
	if reqBody.ClientSeed == "" {
		reqBody.ClientSeed = idStr
	}

	ctx := r.Context()
	season, err := h.seasons.Current(ctx)
	if err != nil || season == nil {
		log.Printf("Admin resimulate: failed to load current season: %v", err)
		response.InternalError(w, "Failed to load current season")
		return
	}

	var scheduled *models.ScheduledGame
	for wi := range season.Schedule {
		for gi := range season.Schedule[wi].Games {
			if season.Schedule[wi].Games[gi].ID == gameID {
				scheduled = &season.Schedule[wi].Games[gi]
			}
		}
	}
	if scheduled == nil {
		response.NotFound(w, "Scheduled game")
		return
	}

	homeTeam, err := h.teams.GetByID(ctx, scheduled.HomeTeamID)
	if err != nil || homeTeam == nil {
		response.InternalError(w, "Failed to load home team")
		return
	}
	awayTeam, err := h.teams.GetByID(ctx, scheduled.AwayTeamID)
	if err != nil || awayTeam == nil {
		response.InternalError(w, "Failed to load away team")
		return
	}
	homeRoster, err := h.teams.GetRoster(ctx, homeTeam.ID)
	if err != nil {
		response.InternalError(w, "Failed to load home roster")
		return
	}
	awayRoster, err := h.teams.GetRoster(ctx, awayTeam.ID)
	if err != nil {
		response.InternalError(w, "Failed to load away roster")
		return
	}

	serverSeed, err := generateSecureAPIKey()
	if err != nil {
		response.InternalError(w, "Failed to generate server seed")
		return
	}

	config := models.GameConfig{
		HomeTeam:   *homeTeam,
		AwayTeam:   *awayTeam,
		HomeRoster: homeRoster,
		AwayRoster: awayRoster,
		GameType:   scheduled.GameType,
		ServerSeed: serverSeed,
		ClientSeed: reqBody.ClientSeed,
	}

	simulated, err := engine.Simulate(config, nil)
	if err != nil {
		log.Printf("Admin resimulate: engine.Simulate failed: %v", err)
		response.Error(w, http.StatusUnprocessableEntity, "SIMULATION_FAILED", err.Error())
		return
	}

	if err := h.games.SaveSimulatedGame(ctx, gameID, simulated); err != nil {
		log.Printf("Admin resimulate: failed to save simulated game: %v", err)
		response.InternalError(w, "Failed to save simulated game")
		return
	}

	homeScore := simulated.FinalScore.Home
	awayScore := simulated.FinalScore.Away
	if err := db.UpdateScheduledGameStatus(ctx, season, gameID, models.ScheduledGameCompleted, &homeScore, &awayScore); err != nil {
		log.Printf("Admin resimulate: failed to update scheduled game status: %v", err)
		response.InternalError(w, "Failed to update schedule")
		return
	}

	if err := h.invalidator.InvalidateGameState(ctx, gameID); err != nil {
		log.Printf("Admin resimulate: cache invalidation failed: %v", err)
	}
	if err := h.invalidator.InvalidateSeason(ctx, season.ID); err != nil {
		log.Printf("Admin resimulate: cache invalidation failed: %v", err)
	}

	response.Success(w, map[string]interface{}{
		"message": "game resimulated",
		"game_id": gameID,
		"status":  "success",
	})
}

// HandleFlushCache handles POST /admin/cache/flush, clearing the
// current-season, standings, and game-state caches.
func (h *AdminHandler) HandleFlushCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	if err := h.invalidator.InvalidateByStrategy(ctx, cache.InvalidateAll); err != nil {
		log.Printf("Admin cache flush failed: %v", err)
		response.InternalError(w, "Failed to flush cache")
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "cache flushed",
		"status":  "success",
	})
}

// HandleGenerateAPIKey generates a new API key for an external consumer.
func (h *AdminHandler) HandleGenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var reqBody struct {
		Unlimited bool   `json:"unlimited"`
		Label     string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	apiKey, err := generateSecureAPIKey()
	if err != nil {
		log.Printf("Failed to generate API key: %v", err)
		response.Error(w, http.StatusInternalServerError, "GENERATION_FAILED", "Failed to generate API key")
		return
	}

	keyType := "standard"
	if reqBody.Unlimited {
		keyType = "unlimited"
	}

	log.Printf("Admin endpoint: generated %s API key with label %q", keyType, reqBody.Label)

	response.Success(w, map[string]interface{}{
		"api_key":   "gim_" + apiKey,
		"type":      keyType,
		"label":     reqBody.Label,
		"unlimited": reqBody.Unlimited,
		"message":   "API key generated successfully. Store this key securely - it cannot be retrieved again.",
	})
}

// generateSecureAPIKey generates a cryptographically secure random hex string.
func generateSecureAPIKey() (string, error) {
	bytes := make([]byte, 32) // 256 bits
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
