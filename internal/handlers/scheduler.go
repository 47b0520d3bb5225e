package handlers

import (
	"net/http"

	"github.com/gridiron-sim/core/internal/broadcast"
	"github.com/gridiron-sim/core/pkg/response"
)

// BroadcastHandler exposes the broadcast orchestrator's poll/dispatch
// status and lets an admin manually trigger a poll.
type BroadcastHandler struct {
	orchestrator *broadcast.Orchestrator
}

// NewBroadcastHandler creates a new broadcast handler.
func NewBroadcastHandler(orchestrator *broadcast.Orchestrator) *BroadcastHandler {
	return &BroadcastHandler{orchestrator: orchestrator}
}

// HandleBroadcastStatus returns the current orchestrator status.
func (h *BroadcastHandler) HandleBroadcastStatus(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.orchestrator.GetStatus())
}

// HandleBroadcastTrigger manually triggers an out-of-cycle poll.
func (h *BroadcastHandler) HandleBroadcastTrigger(w http.ResponseWriter, r *http.Request) {
	h.orchestrator.TriggerPoll()

	response.Success(w, map[string]interface{}{
		"message": "poll triggered",
		"status":  h.orchestrator.GetStatus(),
	})
}
