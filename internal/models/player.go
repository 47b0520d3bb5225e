package models

import "github.com/google/uuid"

// Player statuses accepted on a Roster.
const (
	PlayerStatusActive   = "active"
	PlayerStatusInjured  = "injured"
	PlayerStatusInactive = "inactive"
)

// Ratings holds a player's per-attribute ratings on a 0-100 scale. They
// are stored and carried on Player, but the resolver does not read them
// when sampling play outcomes.
type Ratings struct {
	Speed       int `json:"speed"`
	Strength    int `json:"strength"`
	Accuracy    int `json:"accuracy"`
	Agility     int `json:"agility"`
	Awareness   int `json:"awareness"`
	Catching    int `json:"catching,omitempty"`
	BlockPower  int `json:"block_power,omitempty"`
	Coverage    int `json:"coverage,omitempty"`
	Tackling    int `json:"tackling,omitempty"`
	KickPower   int `json:"kick_power,omitempty"`
	KickAccuracy int `json:"kick_accuracy,omitempty"`
}

// Overall is a simple average of speed, strength, accuracy, agility and
// awareness, computed the same way for every position.
func (r Ratings) Overall() float64 {
	return float64(r.Speed+r.Strength+r.Accuracy+r.Agility+r.Awareness) / 5.0
}

// Player is immutable during simulation: identity, jersey number,
// position, and ratings. A Roster is the set of players associated with a
// team for one game.
type Player struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Position     string    `json:"position" validate:"required"`
	JerseyNumber int       `json:"jersey_number"`
	Ratings      Ratings   `json:"ratings"`
	Status       string    `json:"status" validate:"required,oneof=active injured inactive"`
}
