package engine

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
)

// kneelDownClockThreshold is how little clock must remain, with the ball
// in hand and a lead, before the offense simply kneels out the game.
const kneelDownClockThreshold = 40

// fieldGoalRangeBallPosition is the minimum ball position (yards into
// opponent territory) at which a struggling fourth down becomes a field
// goal attempt rather than a punt.
const fieldGoalRangeBallPosition = 62

// hurryUpClockThreshold is how little clock must remain, with the ball
// live and the clock running, before a tied-or-trailing offense spikes
// the ball to stop the clock and save the down for another play.
const hurryUpClockThreshold = 35

// decideOffense picks the offensive call for the current down and
// situation. This is a simplified coordinator policy standing in for a
// human play-caller: it is deterministic given the RNG stream, not a
// learned or configurable strategy.
func decideOffense(s *rng.Stream, state *models.GameState) models.OffensiveCall {
	if state.PATAttempt {
		if s.NextBool(0.94) {
			return models.OffensiveCall{Type: models.OffExtraPoint}
		}
		return models.OffensiveCall{Type: models.OffTwoPoint}
	}

	if isVictoryFormation(state) {
		return models.OffensiveCall{Type: models.OffKneel}
	}

	if isHurryUp(state) {
		return models.OffensiveCall{Type: models.OffSpike}
	}

	if state.Possession.Down == 4 {
		return decideFourthDown(state)
	}

	return decideNormalDown(s, state)
}

// isHurryUp reports whether the offense should spike the ball: the clock
// is running late in a half, the down isn't already spent on a kick
// decision, and the offense isn't safely ahead. A spike always stops the
// clock, so this never fires twice in a row for the same stoppage.
func isHurryUp(state *models.GameState) bool {
	if state.Clock.Quarter != models.Quarter2 && state.Clock.Quarter != models.Quarter4 {
		return false
	}
	if !state.Clock.IsClockRunning {
		return false
	}
	if state.Clock.ClockSeconds > hurryUpClockThreshold {
		return false
	}
	if state.Possession.Down == 4 {
		return false
	}
	lead := state.Score(state.Possession.Team) - state.Score(state.Possession.Team.Opposite())
	return lead <= 0
}

// isVictoryFormation reports whether the offense is simply running out
// the clock with a safe lead.
func isVictoryFormation(state *models.GameState) bool {
	if state.Clock.Quarter != models.Quarter4 && state.Clock.Quarter != models.QuarterOT {
		return false
	}
	if state.Clock.ClockSeconds > kneelDownClockThreshold {
		return false
	}
	lead := state.Score(state.Possession.Team) - state.Score(state.Possession.Team.Opposite())
	return lead > 0
}

func decideFourthDown(state *models.GameState) models.OffensiveCall {
	if state.Possession.BallPosition >= fieldGoalRangeBallPosition {
		return models.OffensiveCall{Type: models.OffFieldGoal}
	}
	if state.Possession.YardsToGo > 2 {
		return models.OffensiveCall{Type: models.OffPunt}
	}
	return models.OffensiveCall{Type: models.OffRun}
}

var normalDownCalls = []rng.Choice[models.OffensiveCallType]{
	{Value: models.OffRun, Weight: 38},
	{Value: models.OffPass, Weight: 36},
	{Value: models.OffPlayAction, Weight: 14},
	{Value: models.OffScreen, Weight: 12},
}

func decideNormalDown(s *rng.Stream, state *models.GameState) models.OffensiveCall {
	return models.OffensiveCall{Type: rng.NextWeighted(s, normalDownCalls)}
}

var defensiveCalls = []rng.Choice[models.DefensiveCallType]{
	{Value: models.DefBaseD, Weight: 40},
	{Value: models.DefZoneCoverage, Weight: 22},
	{Value: models.DefManCoverage, Weight: 18},
	{Value: models.DefRunBlitz, Weight: 12},
	{Value: models.DefPreventD, Weight: 5},
	{Value: models.DefGoalLineD, Weight: 3},
}

// decideDefense picks the defensive call for the current situation,
// always calling goal-line defense once the offense is inside the
// goal-to-go threshold.
func decideDefense(s *rng.Stream, state *models.GameState) models.DefensiveCall {
	if state.Possession.GoalToGo() {
		return models.DefensiveCall{Type: models.DefGoalLineD}
	}
	return models.DefensiveCall{Type: rng.NextWeighted(s, defensiveCalls)}
}

// fieldGoalDistance converts ball position into an attempt distance in
// yards (100 - ball_position + 17 for the end zone and snap depth).
func fieldGoalDistance(ballPosition int) int {
	return (100 - ballPosition) + 17
}
