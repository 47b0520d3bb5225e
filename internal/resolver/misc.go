package resolver

import (
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
	"github.com/gridiron-sim/core/internal/tables"
)

// resolveKneel resolves a clock-killing kneel down. It never turns the
// ball over and always loses a small amount of yardage.
func resolveKneel(s *rng.Stream, offense models.Roster) models.PlayResult {
	profile := tables.Yardage("kneel")
	yards := s.NextTruncatedGaussian(profile.Mean, profile.StdDev, profile.Min, profile.Max)

	return models.PlayResult{
		Type:         models.PlayKneel,
		YardsGained:  int(yards),
		RusherID:     pickParticipant(offense, quarterbackPositions, s),
		ClockStopped: false,
	}
}

// resolveSpike resolves a clock-stopping spike. It always gains zero yards.
func resolveSpike(s *rng.Stream, offense models.Roster) models.PlayResult {
	s.NextUniform() // spent to keep nonce cadence uniform across play types
	return models.PlayResult{
		Type:         models.PlaySpike,
		YardsGained:  0,
		PasserID:     pickParticipant(offense, quarterbackPositions, s),
		ClockStopped: true,
	}
}
