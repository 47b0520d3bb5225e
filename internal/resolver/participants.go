package resolver

import (
	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
)

// pickParticipant returns the ID of a roster-eligible player at one of the
// given positions (checked in order; the first position with any active
// players is used), chosen uniformly among that position's players. It
// returns uuid.Nil if the roster has nobody eligible, which resolver
// callers treat as "no specific participant recorded" rather than a
// failure - the resolver never errors on thin rosters.
func pickParticipant(roster models.Roster, positions []string, s *rng.Stream) uuid.UUID {
	for _, pos := range positions {
		candidates := roster.ByPosition(pos)
		if len(candidates) == 0 {
			continue
		}
		idx := s.NextInt(0, len(candidates)-1)
		return candidates[idx].ID
	}
	return uuid.Nil
}

var (
	quarterbackPositions = []string{"QB"}
	rusherPositions       = []string{"RB", "QB"}
	receiverPositions     = []string{"WR", "TE", "RB"}
	defenderPositions     = []string{"CB", "S", "LB"}
	kickerPositions       = []string{"K"}
	punterPositions       = []string{"P"}
)
