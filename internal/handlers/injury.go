package handlers

import (
	"log"
	"net/http"

	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/pkg/response"
	"github.com/google/uuid"
)

// InjuryHandler serves persisted injury-log lookups.
type InjuryHandler struct {
	queries *db.InjuryQueries
}

func NewInjuryHandler() *InjuryHandler {
	return &InjuryHandler{queries: &db.InjuryQueries{}}
}

// HandlePlayerInjuries handles GET /api/v1/players/{id}/injuries.
func (h *InjuryHandler) HandlePlayerInjuries(w http.ResponseWriter, r *http.Request, idStr string) {
	playerID, err := uuid.Parse(idStr)
	if err != nil {
		response.BadRequest(w, "Invalid player ID")
		return
	}

	injuries, err := h.queries.ListByPlayer(r.Context(), playerID)
	if err != nil {
		log.Printf("Failed to get player injuries: %v", err)
		response.InternalError(w, "Failed to retrieve player injuries")
		return
	}

	response.Success(w, map[string]interface{}{
		"player_id": playerID,
		"injuries":  injuries,
		"count":     len(injuries),
	})
}

// HandleTeamInjuries handles GET /api/v1/teams/{id}/injuries.
func (h *InjuryHandler) HandleTeamInjuries(w http.ResponseWriter, r *http.Request, idStr string) {
	teamID, err := uuid.Parse(idStr)
	if err != nil {
		response.BadRequest(w, "Invalid team ID")
		return
	}

	injuries, err := h.queries.ListByTeam(r.Context(), teamID)
	if err != nil {
		log.Printf("Failed to get team injuries: %v", err)
		response.InternalError(w, "Failed to retrieve team injuries")
		return
	}

	grouped := make(map[string][]interface{})
	for _, injury := range injuries {
		status := string(injury.Severity)
		grouped[status] = append(grouped[status], injury)
	}

	response.Success(w, map[string]interface{}{
		"team_id":  teamID,
		"injuries": injuries,
		"grouped":  grouped,
		"count":    len(injuries),
	})
}
