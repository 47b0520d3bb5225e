package models

import "github.com/google/uuid"

// Conference is one of the two top-level league groupings.
type Conference string

const (
	ConferenceAFC Conference = "AFC"
	ConferenceNFC Conference = "NFC"
)

// Division is one of the four groupings within a conference.
type Division string

const (
	DivisionNorth Division = "North"
	DivisionSouth Division = "South"
	DivisionEast  Division = "East"
	DivisionWest  Division = "West"
)

// Team is immutable once loaded: identity, alignment, and venue metadata.
// No field on Team is mutated during simulation.
type Team struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name" validate:"required"`
	Abbreviation   string     `json:"abbreviation" validate:"required"`
	City           string     `json:"city" validate:"required"`
	Conference     Conference `json:"conference" validate:"required,oneof=AFC NFC"`
	Division       Division   `json:"division" validate:"required,oneof=North South East West"`
	PrimaryColor   string     `json:"primary_color,omitempty"`
	SecondaryColor string     `json:"secondary_color,omitempty"`
	Dome           bool       `json:"dome"`
}

// Roster is the set of players associated with a team for one game. A
// roster must carry at least 22 active players.
type Roster struct {
	TeamID  uuid.UUID `json:"team_id"`
	Players []Player  `json:"players"`
}

// Active returns the players on the roster whose status is "active".
func (r Roster) Active() []Player {
	active := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Status == PlayerStatusActive {
			active = append(active, p)
		}
	}
	return active
}

// ByPosition returns the active players at a given position, in roster
// order. Used by the resolver to pick participants for a play (e.g. the
// starting quarterback, the top two receivers).
func (r Roster) ByPosition(position string) []Player {
	var out []Player
	for _, p := range r.Players {
		if p.Status == PlayerStatusActive && p.Position == position {
			out = append(out, p)
		}
	}
	return out
}
