package resolver

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
	"github.com/gridiron-sim/core/internal/tables"
)

// touchbackSpot is where the ball is placed after a touchback, measured
// from the receiving team's own goal line.
const touchbackSpot = 25

// resolveKickoff resolves the opening or post-score kickoff.
func resolveKickoff(s *rng.Stream, kickingTeam, receivingTeam models.Roster) models.PlayResult {
	outcome := rng.NextWeighted(s, tables.KickoffOutcome())

	result := models.PlayResult{
		Type:     models.PlayKickoff,
		RusherID: pickParticipant(kickingTeam, kickerPositions, s),
	}

	switch outcome {
	case "touchback_endzone":
		result.Kick = &models.KickSpecial{TouchbackType: models.TouchbackEndzone, IsTouchback: true}
		result.YardsGained = touchbackSpot
	case "touchback_bounce":
		result.Kick = &models.KickSpecial{TouchbackType: models.TouchbackBounce, IsTouchback: true}
		result.YardsGained = touchbackSpot
	case "touchback_short":
		result.Kick = &models.KickSpecial{TouchbackType: models.TouchbackShort, IsTouchback: true}
		result.YardsGained = touchbackSpot - 5
	default: // "returned"
		profile := tables.Yardage("kickoff")
		returnYards := sampleYardage(s, profile)
		result.ReceiverID = pickParticipant(receivingTeam, rusherPositions, s)
		result.Kick = &models.KickSpecial{CatchSpot: touchbackSpot - 10, ReturnYards: returnYards}
		result.YardsGained = touchbackSpot - 10 + returnYards
	}

	result.ClockStopped = true
	return result
}

// resolvePunt resolves a fourth-down punt.
func resolvePunt(s *rng.Stream, state *models.GameState, puntingTeam, receivingTeam models.Roster) models.PlayResult {
	outcome := rng.NextWeighted(s, tables.PuntOutcome())

	result := models.PlayResult{
		Type:     models.PlayPunt,
		RusherID: pickParticipant(puntingTeam, punterPositions, s),
	}

	switch outcome {
	case "touchback_endzone":
		result.Kick = &models.KickSpecial{TouchbackType: models.TouchbackEndzone, IsTouchback: true}
		result.YardsGained = (100 - state.Possession.BallPosition) - touchbackSpot
	case "touchback_bounce":
		result.Kick = &models.KickSpecial{TouchbackType: models.TouchbackBounce, IsTouchback: true}
		result.YardsGained = (100 - state.Possession.BallPosition) - touchbackSpot
	case "touchback_short":
		result.Kick = &models.KickSpecial{TouchbackType: models.TouchbackShort, IsTouchback: true}
		result.YardsGained = (100 - state.Possession.BallPosition) - touchbackSpot - 5
	case "muffed":
		result.Turnover = &models.Turnover{Type: models.TurnoverFumble}
		result.YardsGained = int(s.NextTruncatedGaussian(2, 3, -5, 10))
	case "fair_catch":
		profile := tables.Yardage("punt")
		result.YardsGained = int(sampleYardage(s, profile))
		result.Kick = &models.KickSpecial{TouchbackType: models.TouchbackShort}
	default: // "returned"
		profile := tables.Yardage("punt")
		puntYards := sampleYardage(s, profile)
		returnProfile := tables.Yardage("scramble")
		returnYards := int(s.NextTruncatedGaussian(returnProfile.Mean/2, returnProfile.StdDev/2, 0, 30))
		result.ReceiverID = pickParticipant(receivingTeam, rusherPositions, s)
		result.Kick = &models.KickSpecial{ReturnYards: returnYards}
		result.YardsGained = puntYards - returnYards
	}

	result.ClockStopped = true
	return result
}

// resolveFieldGoal resolves a field goal attempt from the given distance.
// The kicking team is state.Possession.Team.
func resolveFieldGoal(s *rng.Stream, state *models.GameState, distance int, kickingTeam models.Roster) models.PlayResult {
	band := tables.FieldGoalBandFor(distance)
	outcome := rng.NextWeighted(s, []rng.Choice[string]{
		{Value: "good", Weight: band.Good},
		{Value: "miss", Weight: band.Miss},
		{Value: "blocked", Weight: band.Blocked},
	})

	result := models.PlayResult{
		Type:     models.PlayFieldGoal,
		RusherID: pickParticipant(kickingTeam, kickerPositions, s),
	}

	switch outcome {
	case "good":
		result.Scoring = &models.Scoring{Team: state.Possession.Team, Type: models.ScoreFieldGoal, Points: 3}
	case "blocked":
		result.Turnover = &models.Turnover{Type: models.TurnoverOnDowns}
	}

	result.ClockStopped = true
	return result
}

// resolveExtraPoint resolves a post-touchdown extra point attempt. The
// kicking team is state.Possession.Team.
func resolveExtraPoint(s *rng.Stream, state *models.GameState, kickingTeam models.Roster) models.PlayResult {
	band := tables.FieldGoalBandFor(20)
	result := models.PlayResult{
		Type:     models.PlayExtraPoint,
		RusherID: pickParticipant(kickingTeam, kickerPositions, s),
	}
	if s.NextBool(band.Good / (band.Good + band.Miss + band.Blocked)) {
		result.Scoring = &models.Scoring{Team: state.Possession.Team, Type: models.ScoreExtraPoint, Points: 1}
	}
	result.ClockStopped = true
	return result
}

// resolveTwoPoint resolves a post-touchdown two-point conversion attempt,
// modeled as a short-yardage run/pass resolved against the goal-line
// outcome tables. The attempting team is state.Possession.Team.
func resolveTwoPoint(s *rng.Stream, state *models.GameState, offense, defense models.Roster, off models.OffensiveCall) models.PlayResult {
	var outcome string
	if off.Type == models.OffRun {
		outcome = rng.NextWeighted(s, tables.RunOutcome("goal_line"))
	} else {
		outcome = rng.NextWeighted(s, tables.PassOutcome("goal_line"))
	}

	result := models.PlayResult{
		Type:          models.PlayTwoPoint,
		OffensiveCall: off.Type,
		RusherID:      pickParticipant(offense, rusherPositions, s),
		DefenderID:    pickParticipant(defense, defenderPositions, s),
	}

	switch outcome {
	case "complete", "positive", "big_play":
		result.Scoring = &models.Scoring{Team: state.Possession.Team, Type: models.ScoreTwoPointConversion, Points: 2}
	case "fumble":
		result.Turnover = &models.Turnover{Type: models.TurnoverFumble}
	case "interception":
		result.Turnover = &models.Turnover{Type: models.TurnoverInterception}
	}

	result.ClockStopped = true
	return result
}
