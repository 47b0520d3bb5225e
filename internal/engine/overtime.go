package engine

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
)

// otPeriodSeconds returns the overtime period length for a game type:
// regular season is 600s, any playoff round is 900s.
func otPeriodSeconds(gameType models.GameType) int {
	if gameType.IsPlayoff() {
		return models.RegulationSeconds
	}
	return 600
}

// otTimeoutCap returns the per-team timeout allotment for overtime:
// regular season = 2, playoff = 3.
func otTimeoutCap(gameType models.GameType) int {
	if gameType.IsPlayoff() {
		return 3
	}
	return 2
}

// beginOvertime samples a coin toss and initializes OvertimeState. The
// winner's choice (receive or defer) is itself sampled from the RNG since
// the simulation has no external coordinator for coin-toss strategy.
func beginOvertime(s *rng.Stream, state *models.GameState) {
	winner := models.SideHome
	if s.NextBool(0.5) {
		winner = models.SideAway
	}
	choice := models.CoinTossReceive
	if s.NextBool(0.1) {
		choice = models.CoinTossDefer
	}

	if state.Overtime == nil {
		state.Overtime = &models.OvertimeState{PeriodNumber: 1}
	} else {
		state.Overtime.PeriodNumber++
	}
	state.Overtime.CoinTossWinner = winner
	state.Overtime.CoinTossChoice = choice
	state.Overtime.HomePossessed = false
	state.Overtime.AwayPossessed = false
	state.Overtime.FirstPossessionResult = models.OTResultNone
	state.Overtime.IsSuddenDeath = false
	state.Overtime.IsComplete = false

	timeoutCap := otTimeoutCap(state.GameType)
	state.Timeouts = models.Timeouts{Home: timeoutCap, Away: timeoutCap}

	state.Clock = models.Clock{
		Quarter:               models.QuarterOT,
		ClockSeconds:          otPeriodSeconds(state.GameType),
		IsClockRunning:        true,
		TwoMinuteWarningFired: map[models.Quarter]bool{},
	}

	receiver := winner
	if choice == models.CoinTossDefer {
		receiver = winner.Opposite()
	}
	kickoffToReceiver(state, receiver, kickoffReceiveSpot)
}

// recordOvertimePossession marks that side has now had at least one
// overtime possession and, on the first possession only, records how it
// ended.
func recordOvertimePossession(state *models.GameState, side models.Side, result models.OvertimeResult) {
	if side == models.SideHome {
		if !state.Overtime.HomePossessed {
			state.Overtime.HomePossessed = true
		}
	} else {
		if !state.Overtime.AwayPossessed {
			state.Overtime.AwayPossessed = true
		}
	}
	if state.Overtime.FirstPossessionResult == models.OTResultNone {
		state.Overtime.FirstPossessionResult = result
	}
	if state.Overtime.BothTeamsPossessed() {
		state.Overtime.IsSuddenDeath = true
	}
}

// checkOvertimeEnd decides whether overtime is over after a scoring play
// or the clock expiring. Both teams are guaranteed a possession before
// sudden death applies, regardless of a first-possession touchdown.
func checkOvertimeEnd(state *models.GameState) (isOver bool, winner models.Side, tie bool) {
	if state.HomeScore != state.AwayScore {
		if state.Overtime.BothTeamsPossessed() {
			if state.HomeScore > state.AwayScore {
				return true, models.SideHome, false
			}
			return true, models.SideAway, false
		}
		// Scores differ but not both teams have possessed: sudden death
		// only applies once the possession guarantee is satisfied.
		return false, "", false
	}

	if state.Clock.ClockSeconds <= 0 {
		if state.Overtime.BothTeamsPossessed() {
			if !state.GameType.IsPlayoff() {
				return true, "", true
			}
			return false, "", false // playoff tie: a fresh OT period begins
		}
	}

	return false, "", false
}
