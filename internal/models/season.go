package models

import "github.com/google/uuid"

// SeasonStatus tracks where a Season is in its lifecycle.
type SeasonStatus string

const (
	SeasonStatusRegularSeason          SeasonStatus = "regular_season"
	SeasonStatusWildCard               SeasonStatus = "wild_card"
	SeasonStatusDivisional             SeasonStatus = "divisional"
	SeasonStatusConferenceChampionship SeasonStatus = "conference_championship"
	SeasonStatusSuperBowl              SeasonStatus = "super_bowl"
	SeasonStatusOffseason              SeasonStatus = "offseason"
)

// TotalSeasonWeeks is the full week count a Season tracks: 18 regular-season
// weeks plus up to 4 playoff rounds.
const TotalSeasonWeeks = 22

// RegularSeasonWeeks is the number of weeks generate_season_schedule
// produces.
const RegularSeasonWeeks = 18

// ScheduledGameStatus tracks one game's broadcast lifecycle.
type ScheduledGameStatus string

const (
	ScheduledGameScheduled   ScheduledGameStatus = "scheduled"
	ScheduledGameSimulating  ScheduledGameStatus = "simulating"
	ScheduledGameBroadcasting ScheduledGameStatus = "broadcasting"
	ScheduledGameCompleted   ScheduledGameStatus = "completed"
)

// ScheduledGame is one matchup placed into a week by the season scheduler.
type ScheduledGame struct {
	ID               uuid.UUID           `json:"id"`
	Week             int                 `json:"week"`
	HomeTeamID       uuid.UUID           `json:"home_team_id"`
	AwayTeamID       uuid.UUID           `json:"away_team_id"`
	GameType         GameType            `json:"game_type"`
	Status           ScheduledGameStatus `json:"status"`
	HomeScore        *int                `json:"home_score,omitempty"`
	AwayScore        *int                `json:"away_score,omitempty"`
	IsFeatured       bool                `json:"is_featured"`
	ScheduledAt      *string             `json:"scheduled_at,omitempty"`
	BroadcastStartedAt *string           `json:"broadcast_started_at,omitempty"`
	CompletedAt      *string             `json:"completed_at,omitempty"`
}

// WeekScheduleStatus summarizes a week's overall progress. Derived, not
// independently settable.
type WeekScheduleStatus string

const (
	WeekNotStarted WeekScheduleStatus = "not_started"
	WeekInProgress WeekScheduleStatus = "in_progress"
	WeekComplete   WeekScheduleStatus = "complete"
)

// WeekSchedule is one week's slate of games.
type WeekSchedule struct {
	Week           int             `json:"week"`
	Games          []ScheduledGame `json:"games"`
	FeaturedGameID *uuid.UUID      `json:"featured_game_id,omitempty"`
	Status         WeekScheduleStatus `json:"status"`
}

// DeriveStatus derives this week's WeekScheduleStatus from its games.
func (w WeekSchedule) DeriveStatus() WeekScheduleStatus {
	if len(w.Games) == 0 {
		return WeekNotStarted
	}
	allScheduled := true
	allComplete := true
	for _, g := range w.Games {
		if g.Status != ScheduledGameScheduled {
			allScheduled = false
		}
		if g.Status != ScheduledGameCompleted {
			allComplete = false
		}
	}
	switch {
	case allComplete:
		return WeekComplete
	case allScheduled:
		return WeekNotStarted
	default:
		return WeekInProgress
	}
}

// Season is created by the scheduler once and mutated only by advance_*
// transitions.
type Season struct {
	ID            uuid.UUID      `json:"id"`
	SeasonNumber  int            `json:"season_number"`
	Status        SeasonStatus   `json:"status"`
	CurrentWeek   int            `json:"current_week"` // [1,22]
	TotalWeeks    int            `json:"total_weeks"`  // always 22
	Schedule      []WeekSchedule `json:"schedule"`      // length 22
	CompletedAt   *string        `json:"completed_at,omitempty"`
	ChampionID    *uuid.UUID     `json:"champion_id,omitempty"`
}

// CurrentWeekSchedule returns the WeekSchedule for Season.CurrentWeek, or
// nil if out of range.
func (s *Season) CurrentWeekSchedule() *WeekSchedule {
	idx := s.CurrentWeek - 1
	if idx < 0 || idx >= len(s.Schedule) {
		return nil
	}
	return &s.Schedule[idx]
}
