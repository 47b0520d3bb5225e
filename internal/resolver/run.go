package resolver

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
	"github.com/gridiron-sim/core/internal/tables"
)

// resolveRun resolves a called run play. Outcome tables are keyed by the
// goal-to-go/distance context from contextKey; neither the down nor the
// defensive call changes the weights.
func resolveRun(s *rng.Stream, state *models.GameState, offense, defense models.Roster, off models.OffensiveCall, def models.DefensiveCall) models.PlayResult {
	ctx := contextKey(state)
	outcome := rng.NextWeighted(s, tables.RunOutcome(ctx))

	result := models.PlayResult{
		OffensiveCall:    off.Type,
		DefensiveCall:    def.Type,
		RunScheme:        tables.RunScheme(s),
		FormationVariant: tables.Formation(s, "run"),
		MotionType:       tables.MotionType(s),
		RusherID:         pickParticipant(offense, rusherPositions, s),
		DefenderID:       pickParticipant(defense, defenderPositions, s),
	}

	result.Type = models.PlayRun
	switch outcome {
	case "fumble":
		applyFumble(s, state, &result)
	case "stuffed":
		applyRunYardage(s, state, &result, false)
	case "big_play":
		applyBigRunYardage(s, state, &result)
	default: // "positive"
		applyRunYardage(s, state, &result, true)
	}

	result.ClockStopped = result.Touchdown || result.Safety || result.Turnover != nil
	return result
}

// applyRunYardage draws ordinary (non-big-play) yardage. allowGain
// distinguishes a "positive" outcome, which samples the profile's normal
// range, from a "stuffed" outcome, which clamps to a short/negative gain.
func applyRunYardage(s *rng.Stream, state *models.GameState, result *models.PlayResult, allowGain bool) {
	profile := tables.Yardage("run")
	var yards int
	if allowGain {
		yards = int(s.NextTruncatedGaussian(profile.Mean, profile.StdDev, profile.Min, profile.Max))
	} else {
		yards = int(s.NextTruncatedGaussian(0, 2, -3, 2))
	}
	finishRunLikeYardage(state, result, yards)
}

func applyBigRunYardage(s *rng.Stream, state *models.GameState, result *models.PlayResult) {
	profile := tables.Yardage("run")
	yards := int(s.NextTruncatedGaussian(profile.BigPlayMean, profile.BigPlayStdDev, profile.BigPlayMin, profile.BigPlayMax))
	finishRunLikeYardage(state, result, yards)
}

func finishRunLikeYardage(state *models.GameState, result *models.PlayResult, yards int) {
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

func applyFumble(s *rng.Stream, state *models.GameState, result *models.PlayResult) {
	recoveredByOffense, returnYards, defensiveTD := resolveFumble(s, state.Possession.Team)
	if recoveredByOffense {
		yards := int(s.NextTruncatedGaussian(1, 2, -2, 6))
		finishRunLikeYardage(state, result, yards)
		return
	}
	result.Turnover = &models.Turnover{Type: models.TurnoverFumble, ReturnYards: returnYards}
	if defensiveTD {
		result.Scoring = &models.Scoring{Team: state.Possession.Team.Opposite(), Type: models.ScoreFumbleRecoveryTD, Points: 6}
		result.Touchdown = true
	}
}

// sampleYardage draws a yardage value from a profile, including its
// big-play carve-out: a run of 15+ yards must stay reachable even when
// the base distribution alone would rarely produce one.
func sampleYardage(s *rng.Stream, profile tables.YardageProfile) int {
	if profile.BigPlayProb > 0 && s.NextBool(profile.BigPlayProb) {
		return int(s.NextTruncatedGaussian(profile.BigPlayMean, profile.BigPlayStdDev, profile.BigPlayMin, profile.BigPlayMax))
	}
	return int(s.NextTruncatedGaussian(profile.Mean, profile.StdDev, profile.Min, profile.Max))
}
