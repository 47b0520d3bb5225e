package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/pkg/response"
	"github.com/google/uuid"
)

// PlayersHandler serves individual player lookups.
type PlayersHandler struct {
	queries *db.PlayerQueries
}

func NewPlayersHandler() *PlayersHandler {
	return &PlayersHandler{queries: &db.PlayerQueries{}}
}

// HandlePlayers handles GET /api/v1/players/:id and GET
// /api/v1/players/:id/injuries. A roster-wide player listing is served
// by TeamsHandler.getTeamRoster instead of a global endpoint, since
// players only ever exist in the context of a team's roster.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/players")
	path = strings.Trim(path, "/")

	if path == "" {
		response.BadRequest(w, "player ID is required")
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) >= 2 && parts[1] == "injuries" {
		NewInjuryHandler().HandlePlayerInjuries(w, r, parts[0])
		return
	}
	h.getPlayer(w, r, parts[0])
}

func (h *PlayersHandler) getPlayer(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.BadRequest(w, "Invalid player ID format")
		return
	}

	player, err := h.queries.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Error getting player: %v", err)
		response.InternalError(w, "Failed to retrieve player")
		return
	}
	if player == nil {
		response.NotFound(w, "Player")
		return
	}
	response.Success(w, player)
}
