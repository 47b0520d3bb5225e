package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gridiron-sim/core/internal/cache"
	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/pkg/response"
	"github.com/google/uuid"
)

func getCurrentTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// TeamsHandler serves the league's static team catalog and rosters.
type TeamsHandler struct {
	queries *db.TeamQueries
}

func NewTeamsHandler() *TeamsHandler {
	return &TeamsHandler{queries: &db.TeamQueries{}}
}

// HandleTeams handles GET /api/v1/teams (list), GET /api/v1/teams/:id
// (single), and GET /api/v1/teams/:id/roster (roster).
func (h *TeamsHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/teams")
	path = strings.Trim(path, "/")

	if path == "" {
		h.listTeams(w, r)
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) >= 2 && parts[1] == "roster" {
		h.getTeamRoster(w, r, parts[0])
		return
	}
	if len(parts) >= 2 && parts[1] == "injuries" {
		NewInjuryHandler().HandleTeamInjuries(w, r, parts[0])
		return
	}
	h.getTeam(w, r, path)
}

func (h *TeamsHandler) listTeams(w http.ResponseWriter, r *http.Request) {
	cacheKey := cache.CurrentSeasonCacheKey() + ":teams"

	if cached, err := cache.Get(r.Context(), cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Write([]byte(cached))
		return
	}

	teams, err := h.queries.List(r.Context())
	if err != nil {
		log.Printf("Error listing teams: %v", err)
		response.InternalError(w, "Failed to retrieve teams")
		return
	}

	respData := struct {
		Data interface{} `json:"data"`
		Meta struct {
			Timestamp string `json:"timestamp"`
		} `json:"meta"`
	}{Data: teams}
	respData.Meta.Timestamp = getCurrentTimestamp()

	respJSON, _ := json.Marshal(respData)
	cache.Set(r.Context(), cacheKey, string(respJSON), cache.TTLStandings)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Write(respJSON)
}

func (h *TeamsHandler) getTeam(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.BadRequest(w, "Invalid team ID format")
		return
	}

	team, err := h.queries.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Error getting team: %v", err)
		response.InternalError(w, "Failed to retrieve team")
		return
	}
	if team == nil {
		response.NotFound(w, "Team")
		return
	}
	response.Success(w, team)
}

func (h *TeamsHandler) getTeamRoster(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.BadRequest(w, "Invalid team ID format")
		return
	}

	team, err := h.queries.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Error getting team: %v", err)
		response.InternalError(w, "Failed to retrieve team")
		return
	}
	if team == nil {
		response.NotFound(w, "Team")
		return
	}

	roster, err := h.queries.GetRoster(r.Context(), id)
	if err != nil {
		log.Printf("Error getting roster: %v", err)
		response.InternalError(w, "Failed to retrieve roster")
		return
	}
	response.Success(w, roster)
}
