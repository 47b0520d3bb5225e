// Package resolver turns one pair of offensive/defensive coordinator
// calls into a single PlayResult, sampling from the tables package's
// weighted distributions via a caller-supplied rng.Stream. Resolver
// functions never mutate GameState and never set PlayResult.ElapsedSeconds
// - clock accounting belongs to the engine's state machine.
package resolver

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
	"github.com/gridiron-sim/core/internal/tables"
)

// preSnapPenaltyProbability is the chance a play is whistled dead before
// the snap for an offensive or defensive infraction.
const preSnapPenaltyProbability = 0.06

// Resolve dispatches to the play-family resolver matching off.Type and
// applies a pre-snap penalty check first. offense/defense are the roster
// of the team currently on offense/defense; distance is the field-goal
// attempt distance in yards, meaningful only when off.Type is
// models.OffFieldGoal.
func Resolve(s *rng.Stream, state *models.GameState, offense, defense models.Roster, off models.OffensiveCall, def models.DefensiveCall, fieldGoalDistance int) models.PlayResult {
	if penalty, ok := checkPreSnapPenalty(s); ok {
		return penalty
	}

	switch off.Type {
	case models.OffRun:
		return resolveRun(s, state, offense, defense, off, def)
	case models.OffPass, models.OffPlayAction, models.OffScreen:
		return resolvePass(s, state, offense, defense, off, def)
	case models.OffKneel:
		return resolveKneel(s, offense)
	case models.OffSpike:
		return resolveSpike(s, offense)
	case models.OffFieldGoal:
		return resolveFieldGoal(s, state, fieldGoalDistance, offense)
	case models.OffPunt:
		return resolvePunt(s, state, offense, defense)
	case models.OffExtraPoint:
		return resolveExtraPoint(s, state, offense)
	case models.OffTwoPoint:
		sub := models.OffensiveCall{Type: models.OffPass}
		if s.NextBool(0.5) {
			sub.Type = models.OffRun
		}
		return resolveTwoPoint(s, state, offense, defense, sub)
	default:
		panic("resolver: unhandled offensive call type " + string(off.Type))
	}
}

// ResolveKickoff resolves a kickoff independent of the coordinator-call
// dispatch above, since kickoffs have no offensive/defensive call pair.
func ResolveKickoff(s *rng.Stream, kickingTeam, receivingTeam models.Roster) models.PlayResult {
	return resolveKickoff(s, kickingTeam, receivingTeam)
}

// checkPreSnapPenalty samples whether a pre-snap penalty occurs. When it
// does, it returns a terminal PlayResult carrying only the Penalty field
// and ClockStopped;
// callers should stop dispatch and apply the resulting yardage.
func checkPreSnapPenalty(s *rng.Stream) (models.PlayResult, bool) {
	if !s.NextBool(preSnapPenaltyProbability) {
		return models.PlayResult{}, false
	}
	description, yards := tables.PreSnapPenalty(s)
	return models.PlayResult{
		Penalty: &models.Penalty{
			Description: description,
			Yards:       yards,
		},
		ClockStopped: true,
	}, true
}
