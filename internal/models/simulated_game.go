package models

import "github.com/google/uuid"

// FinalScore is the terminal score of a SimulatedGame.
type FinalScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameStatus reports whether a SimulatedGame ran to completion or was
// stopped early by a caller-supplied should_cancel predicate.
type GameStatus string

const (
	GameStatusCompleted GameStatus = "completed"
	GameStatusCanceled  GameStatus = "canceled"
)

// PlayerBoxLine is one player's aggregated contribution across a game.
type PlayerBoxLine struct {
	PlayerID            uuid.UUID `json:"player_id"`
	Team                Side      `json:"team"`
	PassingYards        int       `json:"passing_yards"`
	PassingTouchdowns   int       `json:"passing_touchdowns"`
	Interceptions       int       `json:"interceptions_thrown"`
	RushingYards        int       `json:"rushing_yards"`
	RushingTouchdowns   int       `json:"rushing_touchdowns"`
	ReceivingYards      int       `json:"receiving_yards"`
	ReceivingTouchdowns int       `json:"receiving_touchdowns"`
	Receptions          int       `json:"receptions"`
	Sacks               float64   `json:"sacks"`
	DefensiveTouchdowns int       `json:"defensive_touchdowns"`
	FieldGoalsMade      int       `json:"field_goals_made"`
	FieldGoalsAttempted int       `json:"field_goals_attempted"`

	// ScoringWeight is the MVP-selection contribution score: the highest
	// aggregate scoring-weighted contribution across the game wins MVP.
	ScoringWeight float64 `json:"scoring_weight"`
}

// BoxScore aggregates every player's contribution across the whole game,
// keyed by player ID.
type BoxScore struct {
	Lines map[uuid.UUID]*PlayerBoxLine `json:"lines"`
}

// NewBoxScore returns an empty BoxScore ready for accumulation.
func NewBoxScore() *BoxScore {
	return &BoxScore{Lines: make(map[uuid.UUID]*PlayerBoxLine)}
}

// Line returns the box line for playerID, creating it on first touch.
func (b *BoxScore) Line(playerID uuid.UUID, team Side) *PlayerBoxLine {
	if line, ok := b.Lines[playerID]; ok {
		return line
	}
	line := &PlayerBoxLine{PlayerID: playerID, Team: team}
	b.Lines[playerID] = line
	return line
}

// SimulatedGame is the complete output of simulate_game.
type SimulatedGame struct {
	ID       uuid.UUID `json:"id"`
	HomeTeam Team      `json:"home_team"`
	AwayTeam Team      `json:"away_team"`

	Events []GameEvent `json:"events"`
	Drives []Drive     `json:"drives"`

	FinalScore FinalScore `json:"final_score"`

	ServerSeed     string `json:"server_seed"`
	ServerSeedHash string `json:"server_seed_hash"`
	ClientSeed     string `json:"client_seed"`
	Nonce          uint64 `json:"nonce"`

	TotalPlays   int        `json:"total_plays"`
	MVPPlayerID  uuid.UUID  `json:"mvp_player_id"`
	BoxScore     *BoxScore  `json:"box_score"`
	Weather      Weather    `json:"weather"`
	Status       GameStatus `json:"status"`
}
