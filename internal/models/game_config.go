package models

// GameType selects timing/timeout rules (see GameState) and informs the
// box score's PlayoffRound annotation.
type GameType string

const (
	GameTypeRegular               GameType = "regular"
	GameTypeWildCard              GameType = "wild_card"
	GameTypeDivisional            GameType = "divisional"
	GameTypeConferenceChampionship GameType = "conference_championship"
	GameTypeSuperBowl             GameType = "super_bowl"
)

// IsPlayoff reports whether g uses playoff overtime rules (900s periods,
// 3 timeouts, sudden-death-after-first-OT-tie continuing indefinitely).
func (g GameType) IsPlayoff() bool {
	return g != GameTypeRegular
}

// GameConfig is the sole input to simulate_game.
type GameConfig struct {
	HomeTeam   Team
	AwayTeam   Team
	HomeRoster Roster
	AwayRoster Roster
	GameType   GameType

	// ServerSeed is secret until reveal; must be >= rng.MinServerSeedLen
	// hex characters. ClientSeed is public and must be non-empty.
	ServerSeed string
	ClientSeed string
}
