package engine

import (
	"github.com/gridiron-sim/core/internal/models"
)

// kickoffReceiveSpot is the standard field position a receiving team
// starts from on a touchback (25-yard line).
const kickoffReceiveSpot = 25

// kickoffToReceiver seeds a new possession for the team receiving the
// kickoff, at the field position the resolver computed.
func kickoffToReceiver(state *models.GameState, receiver models.Side, landingSpot int) {
	state.Possession = models.Possession{
		Team:               receiver,
		BallPosition:       landingSpot,
		Down:               1,
		YardsToGo:          10,
		DriveStartPosition: landingSpot,
	}
	state.Kickoff = false
	state.Clock.IsClockRunning = true
}

// applyPlay advances downs, position, and possession in response to one
// resolved play. It returns true if the drive that was in progress ended
// (score, turnover, punt, or turnover on downs).
func applyPlay(state *models.GameState, result models.PlayResult) (driveEnded bool, driveResult models.DriveResult) {
	if result.Penalty != nil && result.Type == "" {
		applyPenaltyOnly(state, result.Penalty)
		return false, ""
	}

	if result.Scoring != nil {
		state.AddScore(result.Scoring.Team, result.Scoring.Points)
	}

	switch {
	case result.Safety:
		return true, models.DriveSafety
	case result.Scoring != nil && result.Scoring.Type == models.ScoreFieldGoal:
		return true, models.DriveFieldGoal
	case result.Touchdown:
		return true, models.DriveTouchdown
	case result.Turnover != nil:
		applyTurnover(state, result)
		driveResult := models.DriveTurnover
		if result.Turnover.Type == models.TurnoverOnDowns {
			driveResult = models.DriveTurnoverOnDowns
		}
		return true, driveResult
	case result.Type == models.PlayPunt:
		flipPossessionForPunt(state, result)
		return true, models.DrivePunt
	}

	advanceDownAndPosition(state, result)
	if state.Possession.Down > 4 {
		turnoverOnDowns(state)
		return true, models.DriveTurnoverOnDowns
	}
	return false, ""
}

// applyPenaltyOnly applies a standalone pre-snap penalty's yardage against
// the current line of scrimmage and replays the down.
func applyPenaltyOnly(state *models.GameState, penalty *models.Penalty) {
	if penalty.Declined || penalty.Offsetting {
		return
	}
	state.Possession.BallPosition -= penalty.Yards
	if state.Possession.BallPosition < 0 {
		state.Possession.BallPosition = 0
	}
	state.Possession.YardsToGo += penalty.Yards
}

// advanceDownAndPosition applies ordinary yardage progress: moves the ball,
// resets to 1st & 10 (or 1st & goal) on a first down, otherwise advances
// the down counter.
func advanceDownAndPosition(state *models.GameState, result models.PlayResult) {
	state.Possession.BallPosition += result.YardsGained
	if state.Possession.BallPosition < 0 {
		state.Possession.BallPosition = 0
	}
	if state.Possession.BallPosition > 100 {
		state.Possession.BallPosition = 100
	}

	remaining := state.Possession.YardsToGo - result.YardsGained
	if remaining <= 0 {
		state.Possession.Down = 1
		state.Possession.YardsToGo = firstDownDistance(state.Possession.BallPosition)
		return
	}
	state.Possession.Down++
	state.Possession.YardsToGo = remaining
}

// firstDownDistance returns 10, or the distance to the goal line if that
// is shorter than 10 (goal-to-go).
func firstDownDistance(ballPosition int) int {
	toGoal := 100 - ballPosition
	if toGoal < 10 {
		return toGoal
	}
	return 10
}

// applyTurnover flips possession at the dead-ball spot (adjusted by return
// yardage) with the field coordinate flipped.
func applyTurnover(state *models.GameState, result models.PlayResult) {
	deadBallSpot := state.Possession.BallPosition + result.YardsGained
	if result.Turnover.ReturnYards != 0 {
		deadBallSpot += result.Turnover.ReturnYards
	}
	flipped := 100 - clampFieldPosition(deadBallSpot)

	state.Possession = models.Possession{
		Team:               state.Possession.Team.Opposite(),
		BallPosition:        flipped,
		Down:               1,
		YardsToGo:          firstDownDistance(flipped),
		DriveStartPosition: flipped,
	}
}

// turnoverOnDowns hands the ball to the defense at the spot where the
// fourth-down attempt ended, with the field flipped.
func turnoverOnDowns(state *models.GameState) {
	flipped := 100 - clampFieldPosition(state.Possession.BallPosition)
	state.Possession = models.Possession{
		Team:               state.Possession.Team.Opposite(),
		BallPosition:        flipped,
		Down:               1,
		YardsToGo:          firstDownDistance(flipped),
		DriveStartPosition: flipped,
	}
}

// flipPossessionForPunt hands the ball to the receiving team at the punt's
// net landing spot.
func flipPossessionForPunt(state *models.GameState, result models.PlayResult) {
	landingSpot := state.Possession.BallPosition + result.YardsGained
	flipped := 100 - clampFieldPosition(landingSpot)
	state.Possession = models.Possession{
		Team:               state.Possession.Team.Opposite(),
		BallPosition:        flipped,
		Down:               1,
		YardsToGo:          firstDownDistance(flipped),
		DriveStartPosition: flipped,
	}
}

func clampFieldPosition(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
