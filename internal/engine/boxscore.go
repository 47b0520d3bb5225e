package engine

import (
	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
)

// recordBoxLine folds one play's statistical contribution into the box
// score. offense is the side that was on offense for this play.
func (d *driver) recordBoxLine(result models.PlayResult, offense models.Side) {
	switch result.Type {
	case models.PlayPassComplete:
		if result.PasserID != uuid.Nil {
			passer := d.box.Line(result.PasserID, offense)
			passer.PassingYards += result.YardsGained
			if result.Touchdown {
				passer.PassingTouchdowns++
			}
			passer.ScoringWeight += scoringWeightFor(result)
		}
		if result.ReceiverID != uuid.Nil {
			receiver := d.box.Line(result.ReceiverID, offense)
			receiver.ReceivingYards += result.YardsGained
			receiver.Receptions++
			if result.Touchdown {
				receiver.ReceivingTouchdowns++
			}
			receiver.ScoringWeight += scoringWeightFor(result)
		}
	case models.PlayPassIncomplete:
		if result.Turnover != nil && result.Turnover.Type == models.TurnoverInterception && result.PasserID != uuid.Nil {
			passer := d.box.Line(result.PasserID, offense)
			passer.Interceptions++
		}
	case models.PlayRun, models.PlayScramble:
		if result.RusherID != uuid.Nil {
			rusher := d.box.Line(result.RusherID, offense)
			rusher.RushingYards += result.YardsGained
			if result.Touchdown {
				rusher.RushingTouchdowns++
			}
			rusher.ScoringWeight += scoringWeightFor(result)
		}
	case models.PlaySack:
		if result.DefenderID != uuid.Nil {
			defender := d.box.Line(result.DefenderID, offense.Opposite())
			defender.Sacks += 1
		}
	case models.PlayFieldGoal:
		if result.RusherID != uuid.Nil {
			kicker := d.box.Line(result.RusherID, offense)
			kicker.FieldGoalsAttempted++
			if result.Scoring != nil {
				kicker.FieldGoalsMade++
				kicker.ScoringWeight += scoringWeightFor(result)
			}
		}
	}

	if result.Scoring != nil && isDefensiveScore(result.Scoring.Type) && result.DefenderID != uuid.Nil {
		defender := d.box.Line(result.DefenderID, offense.Opposite())
		defender.DefensiveTouchdowns++
		defender.ScoringWeight += scoringWeightFor(result)
	}
}

func isDefensiveScore(t models.ScoringType) bool {
	return t == models.ScorePickSix || t == models.ScoreFumbleRecoveryTD || t == models.ScoreDefensiveTouchdown
}

// scoringWeightFor is the per-play contribution score MVP selection sums
// across a player's plays to find the highest aggregate contribution.
func scoringWeightFor(result models.PlayResult) float64 {
	if result.Scoring == nil {
		return 0
	}
	switch result.Scoring.Type {
	case models.ScoreTouchdown, models.ScorePickSix, models.ScoreFumbleRecoveryTD, models.ScoreDefensiveTouchdown:
		return 6
	case models.ScoreFieldGoal:
		return 3
	case models.ScoreTwoPointConversion:
		return 2
	case models.ScoreExtraPoint:
		return 1
	case models.ScoreSafety, models.ScorePATSafety:
		return 2
	default:
		return 0
	}
}

// selectMVP returns the player ID with the highest aggregate
// scoring-weighted contribution, breaking ties by total yardage, then by
// the lowest player ID for determinism.
func selectMVP(box *models.BoxScore) uuid.UUID {
	var best uuid.UUID
	var bestWeight, bestYards float64
	first := true

	for id, line := range box.Lines {
		yards := float64(line.PassingYards + line.RushingYards + line.ReceivingYards)
		if first || line.ScoringWeight > bestWeight ||
			(line.ScoringWeight == bestWeight && yards > bestYards) ||
			(line.ScoringWeight == bestWeight && yards == bestYards && lessUUID(id, best)) {
			best = id
			bestWeight = line.ScoringWeight
			bestYards = yards
			first = false
		}
	}
	return best
}

func lessUUID(a, b uuid.UUID) bool {
	return a.String() < b.String()
}
