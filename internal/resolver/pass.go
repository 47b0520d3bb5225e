package resolver

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
	"github.com/gridiron-sim/core/internal/tables"
)

// droppedPassBaseProbability is the baseline rate at which a catchable
// target is ruled dropped rather than complete.
const droppedPassBaseProbability = 0.035

// sackYardageMean/StdDev bound how far behind the line of scrimmage a
// sack typically lands.
const sackYardageMean = -7
const sackYardageStdDev = 3

// resolvePass resolves a called pass play, including play-action and
// screen variants, which reuse the same outcome machinery under a
// different context key.
func resolvePass(s *rng.Stream, state *models.GameState, offense, defense models.Roster, off models.OffensiveCall, def models.DefensiveCall) models.PlayResult {
	ctx := passContextKey(state, off)
	outcome := rng.NextWeighted(s, tables.PassOutcome(ctx))

	result := models.PlayResult{
		OffensiveCall:    off.Type,
		DefensiveCall:    def.Type,
		ProtectionScheme: tables.ProtectionScheme(s),
		FormationVariant: tables.Formation(s, "pass"),
		MotionType:       tables.MotionType(s),
		RouteConcept:     tables.RouteConcept(s),
		PasserID:         pickParticipant(offense, quarterbackPositions, s),
		DefenderID:       pickParticipant(defense, defenderPositions, s),
	}

	switch outcome {
	case "complete":
		result.Type = models.PlayPassComplete
		result.ReceiverID = pickParticipant(offense, receiverPositions, s)
		applyCompletionYardage(s, state, off, &result)
		if !result.Dropped && s.NextBool(droppedPassBaseProbability) {
			result.Dropped = true
			result.Type = models.PlayPassIncomplete
			result.YardsGained = 0
			result.Touchdown = false
			result.Scoring = nil
		}
	case "interception":
		result.Type = models.PlayPassIncomplete
		result.ReceiverID = pickParticipant(offense, receiverPositions, s)
		returnYards, pickSix := resolveInterception(s)
		result.Turnover = &models.Turnover{Type: models.TurnoverInterception, ReturnYards: returnYards}
		if pickSix {
			result.Scoring = &models.Scoring{Team: state.Possession.Team.Opposite(), Type: models.ScorePickSix, Points: 6}
			result.Touchdown = true
		}
	case "sack":
		result.Type = models.PlaySack
		applySackYardage(s, state, &result)
	case "scramble":
		result.Type = models.PlayScramble
		result.RusherID = pickParticipant(offense, quarterbackPositions, s)
		applyScrambleYardage(s, state, &result)
	default: // "incomplete"
		result.Type = models.PlayPassIncomplete
		result.ReceiverID = pickParticipant(offense, receiverPositions, s)
	}

	result.ClockStopped = result.Type == models.PlayPassIncomplete || result.Touchdown || result.Safety || result.Turnover != nil
	return result
}

func passContextKey(state *models.GameState, off models.OffensiveCall) string {
	switch off.Type {
	case models.OffScreen:
		return "screen"
	case models.OffPlayAction:
		return "play_action"
	}
	if state.Possession.GoalToGo() {
		return "goal_line"
	}
	return "base"
}

func applyCompletionYardage(s *rng.Stream, state *models.GameState, off models.OffensiveCall, result *models.PlayResult) {
	playType := "pass_complete"
	if off.Type == models.OffScreen {
		playType = "screen_complete"
	}
	profile := tables.Yardage(playType)
	yards := sampleYardage(s, profile)
	clamped, td, safety := clampToFieldAndClassify(state.Possession.BallPosition, yards)
	result.YardsGained = clamped
	result.Touchdown = td
	result.Safety = safety
	if td {
		result.Scoring = &models.Scoring{Team: state.Possession.Team, Type: models.ScoreTouchdown, Points: 6}
	} else if safety {
		result.Scoring = &models.Scoring{Team: state.Possession.Team.Opposite(), Type: models.ScoreSafety, Points: 2}
	}
}

func applySackYardage(s *rng.Stream, state *models.GameState, result *models.PlayResult) {
	yards := int(s.NextTruncatedGaussian(sackYardageMean, sackYardageStdDev, -15, -1))
	clamped, _, safety := clampToFieldAndClassify(state.Possession.BallPosition, yards)
	result.YardsGained = clamped
	result.Safety = safety
	if safety {
		result.Scoring = &models.Scoring{Team: state.Possession.Team.Opposite(), Type: models.ScoreSafety, Points: 2}
	}
}

func applyScrambleYardage(s *rng.Stream, state *models.GameState, result *models.PlayResult) {
	profile := tables.Yardage("scramble")
	yards := sampleYardage(s, profile)
	clamped, td, safety := clampToFieldAndClassify(state.Possession.BallPosition, yards)
	result.YardsGained = clamped
	result.Touchdown = td
	result.Safety = safety
	if td {
		result.Scoring = &models.Scoring{Team: state.Possession.Team, Type: models.ScoreTouchdown, Points: 6}
	} else if safety {
		result.Scoring = &models.Scoring{Team: state.Possession.Team.Opposite(), Type: models.ScoreSafety, Points: 2}
	}
}
