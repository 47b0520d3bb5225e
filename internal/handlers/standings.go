package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gridiron-sim/core/internal/cache"
	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/standings"
	"github.com/gridiron-sim/core/pkg/response"
)

// StandingsHandler computes and serves the current season's standings
// table, derived from the season document rather than read back from a
// normalized standings table.
type StandingsHandler struct {
	seasons *db.SeasonQueries
	teams   *db.TeamQueries
}

func NewStandingsHandler() *StandingsHandler {
	return &StandingsHandler{
		seasons: &db.SeasonQueries{},
		teams:   &db.TeamQueries{},
	}
}

// HandleStandings returns the current season's standings.
//
// Query parameters:
//   - division (optional): filter by division, matched exactly (e.g. "North")
//   - conference (optional): filter by conference, matched exactly ("AFC" or "NFC")
//
// Only the unfiltered table is cached.
//
// Example: GET /api/v1/standings?conference=AFC
func (h *StandingsHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
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

	conference := models.Conference(r.URL.Query().Get("conference"))
	division := models.Division(r.URL.Query().Get("division"))
	useCache := conference == "" && division == ""

	cacheKey := cache.StandingsCacheKey(season.ID)
	if useCache {
		if cached, err := cache.Get(r.Context(), cacheKey); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write([]byte(cached))
			return
		}
	}

	teams, err := h.teams.List(r.Context())
	if err != nil {
		log.Printf("Error loading teams: %v", err)
		response.InternalError(w, "Failed to retrieve teams")
		return
	}

	records := standings.Compute(season, teams)

	if !useCache {
		filtered := records[:0]
		for _, rec := range records {
			if conference != "" && rec.Conference != conference {
				continue
			}
			if division != "" && rec.Division != division {
				continue
			}
			filtered = append(filtered, rec)
		}
		records = filtered
	}

	body, _ := json.Marshal(struct {
		Data interface{} `json:"data"`
	}{Data: records})
	if useCache {
		cache.Set(r.Context(), cacheKey, string(body), cache.TTLStandings)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Write(body)
}
