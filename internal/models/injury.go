package models

import "github.com/google/uuid"

// InjuryLogEntry is one Injury event persisted against the SimulatedGame
// and player it occurred in, so a team's injury history survives beyond
// the in-memory PlayResult that produced it.
type InjuryLogEntry struct {
	ID          uuid.UUID      `json:"id"`
	GameID      uuid.UUID      `json:"game_id"`
	PlayerID    uuid.UUID      `json:"player_id"`
	TeamID      uuid.UUID      `json:"team_id"`
	Severity    InjurySeverity `json:"severity"`
	Description string         `json:"description"`
	EventNumber int            `json:"event_number"`
}
