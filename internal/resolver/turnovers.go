package resolver

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
)

// fumbleRecoveryTDProbability is the chance a recovered fumble is returned
// all the way for a defensive score, once the defense has recovered it.
const fumbleRecoveryTDProbability = 0.08

// offenseRecoversOwnFumbleProbability is the chance a fumble stays with
// the offense rather than changing possession.
const offenseRecoversOwnFumbleProbability = 0.45

// interceptionPickSixProbability is the chance an interception is
// returned all the way for a defensive score.
const interceptionPickSixProbability = 0.12

// resolveFumble decides recovery and, if the defense recovers, whether it
// is houscored as a fumble-recovery touchdown. offense is the side that
// fumbled.
func resolveFumble(s *rng.Stream, offense models.Side) (recoveredByOffense bool, returnYards int, defensiveTD bool) {
	if s.NextBool(offenseRecoversOwnFumbleProbability) {
		return true, 0, false
	}
	if s.NextBool(fumbleRecoveryTDProbability) {
		return false, 0, true
	}
	returnYards = int(s.NextTruncatedGaussian(4, 4, 0, 12))
	return false, returnYards, false
}

// resolveInterception decides the return yardage and whether it is a
// pick-six.
func resolveInterception(s *rng.Stream) (returnYards int, pickSix bool) {
	if s.NextBool(interceptionPickSixProbability) {
		return 0, true
	}
	return int(s.NextTruncatedGaussian(6, 6, 0, 20)), false
}

// contextKey classifies the situation into the context bucket used to
// look up weighted outcome tables: goal-to-go, then short yardage (2 or
// fewer to go), else base. The down does not enter the key.
func contextKey(state *models.GameState) string {
	if state.Possession.GoalToGo() {
		return "goal_line"
	}
	if state.Possession.YardsToGo <= 2 {
		return "short_yardage"
	}
	return "base"
}

// clampToFieldAndClassify clamps a yardage gain to the legal field and
// reports whether it produced a touchdown or safety: ball_position+yards
// never exceeds 100, and a carry behind the offense's own goal line is a
// safety.
func clampToFieldAndClassify(ballPosition, yards int) (clamped int, touchdown bool, safety bool) {
	end := ballPosition + yards
	if end >= 100 {
		return 100 - ballPosition, true, false
	}
	if end <= 0 {
		return -ballPosition, false, true
	}
	return yards, false, false
}
