package engine

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
)

// elapsedSecondsProfile bounds how much game clock a play type consumes.
// Administrative plays (penalties, spikes) burn little to no time; running
// plays that stay in bounds burn the most because the clock keeps running.
type elapsedSecondsProfile struct {
	mean, stdDev, min, max float64
}

var elapsedSecondsProfiles = map[models.PlayType]elapsedSecondsProfile{
	models.PlayRun:            {mean: 35, stdDev: 8, min: 15, max: 42},
	models.PlayPassComplete:   {mean: 30, stdDev: 7, min: 12, max: 40},
	models.PlayPassIncomplete: {mean: 6, stdDev: 2, min: 3, max: 10},
	models.PlaySack:           {mean: 32, stdDev: 6, min: 15, max: 40},
	models.PlayScramble:       {mean: 34, stdDev: 7, min: 15, max: 42},
	models.PlayKickoff:        {mean: 8, stdDev: 2, min: 4, max: 14},
	models.PlayPunt:           {mean: 8, stdDev: 2, min: 4, max: 14},
	models.PlayFieldGoal:      {mean: 6, stdDev: 1.5, min: 3, max: 10},
	models.PlayExtraPoint:     {mean: 4, stdDev: 1, min: 2, max: 7},
	models.PlayTwoPoint:       {mean: 5, stdDev: 1.5, min: 2, max: 9},
	models.PlayKneel:          {mean: 40, stdDev: 2, min: 38, max: 42},
	models.PlaySpike:          {mean: 2, stdDev: 0.5, min: 1, max: 3},
}

// elapsedSecondsFor samples how much clock a resolved play consumed. A
// pre-snap penalty (zero play type) always takes a minimal administrative
// tick.
func elapsedSecondsFor(s *rng.Stream, result models.PlayResult) int {
	if result.Penalty != nil && result.Type == "" {
		return int(s.NextTruncatedGaussian(4, 1, 2, 8))
	}
	profile, ok := elapsedSecondsProfiles[result.Type]
	if !ok {
		profile = elapsedSecondsProfile{mean: 30, stdDev: 8, min: 5, max: 42}
	}
	return int(s.NextTruncatedGaussian(profile.mean, profile.stdDev, profile.min, profile.max))
}

// tickClock decrements the clock and reports whether the quarter expired
// as a result. The clock never goes negative; it clamps to 0 at [0, 900].
func tickClock(state *models.GameState, elapsed int) (expired bool) {
	if !state.Clock.IsClockRunning {
		return false
	}
	state.Clock.ClockSeconds -= elapsed
	if state.Clock.ClockSeconds <= 0 {
		state.Clock.ClockSeconds = 0
		return true
	}
	checkTwoMinuteWarning(state)
	return false
}

// checkTwoMinuteWarning fires the two-minute warning once per half when
// the clock passes 120 seconds from above.
func checkTwoMinuteWarning(state *models.GameState) {
	if state.Clock.Quarter != models.Quarter2 && state.Clock.Quarter != models.Quarter4 {
		return
	}
	if state.Clock.TwoMinuteWarningFired == nil {
		state.Clock.TwoMinuteWarningFired = map[models.Quarter]bool{}
	}
	if state.Clock.ClockSeconds <= models.TwoMinuteWarningSeconds && !state.Clock.TwoMinuteWarningFired[state.Clock.Quarter] {
		state.Clock.TwoMinuteWarningFired[state.Clock.Quarter] = true
		state.Clock.IsClockRunning = false
	}
}

// endOfQuarter advances to the next quarter, resetting the clock to a full
// 900 seconds. The driver does not call it during overtime, which uses its
// own period length, applied by the overtime sub-machine.
func endOfQuarter(state *models.GameState) {
	switch state.Clock.Quarter {
	case models.Quarter1:
		state.Clock.Quarter = models.Quarter2
	case models.Quarter2:
		state.Clock.Quarter = models.Quarter3
	case models.Quarter3:
		state.Clock.Quarter = models.Quarter4
	}
	state.Clock.ClockSeconds = models.RegulationSeconds
	state.Clock.IsClockRunning = true
}

// halftime freezes the clock at the end of Q2 and marks is_halftime; the
// driver resumes by kicking off to the team that did not receive the
// opening kickoff.
func halftime(state *models.GameState) {
	state.Clock.IsHalftime = true
	state.Clock.IsClockRunning = false
	state.Clock.ClockSeconds = 0
}

// resumeFromHalftime clears the halftime flag and resets the clock for Q3.
func resumeFromHalftime(state *models.GameState) {
	state.Clock.IsHalftime = false
	state.Clock.Quarter = models.Quarter3
	state.Clock.ClockSeconds = models.RegulationSeconds
	state.Clock.IsClockRunning = true
}

// callTimeout decrements a team's timeout count and stops the clock. It
// fails softly with no state change if the team has none remaining.
func callTimeout(state *models.GameState, side models.Side) {
	if state.Timeouts.Remaining(side) <= 0 {
		return
	}
	if side == models.SideHome {
		state.Timeouts.Home--
	} else {
		state.Timeouts.Away--
	}
	state.Clock.IsClockRunning = false
}

// trailingTimeoutClockThreshold is how little clock must remain, late in
// a half, before the trailing defense starts spending its timeouts to
// preserve time for its own offense rather than let the clock run.
const trailingTimeoutClockThreshold = 120

// maybeCallDefensiveTimeout has the trailing defense call a timeout when
// the clock is still running late in a half, mirroring the real
// stop-the-clock strategy a defense facing a comeback would use.
func maybeCallDefensiveTimeout(state *models.GameState, offense models.Side) {
	if !state.Clock.IsClockRunning {
		return
	}
	if state.Clock.Quarter != models.Quarter2 && state.Clock.Quarter != models.Quarter4 {
		return
	}
	if state.Clock.ClockSeconds > trailingTimeoutClockThreshold {
		return
	}
	defense := offense.Opposite()
	if state.Score(defense) >= state.Score(offense) {
		return
	}
	if state.Timeouts.Remaining(defense) <= 0 {
		return
	}
	callTimeout(state, defense)
}
