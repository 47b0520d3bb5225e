// Package weather deterministically samples on-field conditions for a
// simulated game: a pure RNG-driven sampler rather than a live weather
// feed, since the simulation core forbids network I/O and weather here is
// a function of (rng, team) rather than an external call.
package weather

import (
	"fmt"

	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
)

type conditionProfile struct {
	conditionType string
	tempMean      float64
	tempStdDev    float64
	windMean      float64
	windStdDev    float64
	precipPct     int
	description   string
}

var outdoorProfiles = []rng.Choice[conditionProfile]{
	{Weight: 45, Value: conditionProfile{conditionType: "clear", tempMean: 62, tempStdDev: 15, windMean: 6, windStdDev: 4, precipPct: 0, description: "Clear skies"}},
	{Weight: 20, Value: conditionProfile{conditionType: "cloudy", tempMean: 55, tempStdDev: 14, windMean: 9, windStdDev: 5, precipPct: 10, description: "Overcast"}},
	{Weight: 15, Value: conditionProfile{conditionType: "rain", tempMean: 50, tempStdDev: 10, windMean: 12, windStdDev: 6, precipPct: 70, description: "Steady rain"}},
	{Weight: 10, Value: conditionProfile{conditionType: "wind", tempMean: 48, tempStdDev: 12, windMean: 22, windStdDev: 8, precipPct: 5, description: "Gusty winds"}},
	{Weight: 7, Value: conditionProfile{conditionType: "snow", tempMean: 28, tempStdDev: 8, windMean: 10, windStdDev: 5, precipPct: 80, description: "Snow showers"}},
	{Weight: 3, Value: conditionProfile{conditionType: "fog", tempMean: 45, tempStdDev: 8, windMean: 4, windStdDev: 3, precipPct: 20, description: "Fog"}},
}

// Sample draws a Weather reading for the given team's home venue. Dome
// teams always receive models.DomeWeather() before any play is resolved,
// regardless of what the RNG would otherwise produce — the dome check
// runs first and short-circuits sampling entirely so it never consumes a
// nonce.
func Sample(s *rng.Stream, homeTeam models.Team) models.Weather {
	if homeTeam.Dome {
		return models.DomeWeather()
	}

	profile := rng.NextWeighted(s, outdoorProfiles)
	temp := int(s.NextTruncatedGaussian(profile.tempMean, profile.tempStdDev, -10, 105))
	wind := int(s.NextTruncatedGaussian(profile.windMean, profile.windStdDev, 0, 40))
	if wind < 0 {
		wind = 0
	}

	return models.Weather{
		Type:             profile.conditionType,
		TemperatureF:     temp,
		WindMPH:          wind,
		PrecipitationPct: profile.precipPct,
		Description:      fmt.Sprintf("%s, %d°F, wind %d mph", profile.description, temp, wind),
	}
}
