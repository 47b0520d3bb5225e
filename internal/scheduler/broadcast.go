package scheduler

import (
	"time"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
)

// OffseasonDuration is how long a season stays in SeasonStatusOffseason
// before the broadcast scheduler recommends starting a new one.
const OffseasonDuration = 2 * time.Hour

// ActionType enumerates the broadcast scheduler's decision space.
type ActionType string

const (
	ActionCreateSeason     ActionType = "create_season"
	ActionNoAction         ActionType = "no_action"
	ActionStartGame        ActionType = "start_game"
	ActionAdvanceWeek      ActionType = "advance_week"
	ActionStartPlayoffs    ActionType = "start_playoffs"
	ActionAdvancePlayoffs  ActionType = "advance_playoffs"
	ActionEndSeason        ActionType = "end_season"
)

// Action is the broadcast scheduler's decision: what the caller should do
// next. GameID is populated only for ActionStartGame and, informationally,
// ActionNoAction when a game is already broadcasting.
type Action struct {
	Type   ActionType
	GameID *uuid.UUID
}

// DetermineNextAction implements the broadcast scheduler's first-match-wins
// rule ladder. now is injected as a parameter so the function stays pure.
func DetermineNextAction(season *models.Season, now time.Time) Action {
	if season == nil {
		return Action{Type: ActionCreateSeason}
	}

	if season.Status == models.SeasonStatusOffseason {
		if season.CompletedAt != nil {
			completedAt, err := time.Parse(time.RFC3339, *season.CompletedAt)
			if err == nil && now.Sub(completedAt) >= OffseasonDuration {
				return Action{Type: ActionCreateSeason}
			}
		}
		return Action{Type: ActionNoAction}
	}

	week := season.CurrentWeekSchedule()
	if week == nil {
		return Action{Type: ActionNoAction}
	}

	if broadcasting := gameWithStatus(week, models.ScheduledGameBroadcasting); broadcasting != nil {
		id := broadcasting.ID
		return Action{Type: ActionNoAction, GameID: &id}
	}

	hasSimulating := gameWithStatus(week, models.ScheduledGameSimulating) != nil
	hasScheduled := gameWithStatus(week, models.ScheduledGameScheduled) != nil
	if hasSimulating && !hasScheduled {
		return Action{Type: ActionNoAction}
	}

	if hasScheduled {
		next := nextScheduledGame(week)
		id := next.ID
		return Action{Type: ActionStartGame, GameID: &id}
	}

	// All games in the current week are complete: advance.
	if season.CurrentWeek < models.RegularSeasonWeeks {
		return Action{Type: ActionAdvanceWeek}
	}
	if season.CurrentWeek == models.RegularSeasonWeeks && season.Status == models.SeasonStatusRegularSeason {
		return Action{Type: ActionStartPlayoffs}
	}
	if season.Status == models.SeasonStatusSuperBowl {
		return Action{Type: ActionEndSeason}
	}
	return Action{Type: ActionAdvancePlayoffs}
}

// BroadcastStatus is the coarse presentation state derived from a season.
type BroadcastStatus string

const (
	BroadcastOffseason    BroadcastStatus = "offseason"
	BroadcastLive         BroadcastStatus = "live"
	BroadcastIntermission BroadcastStatus = "intermission"
)

// BroadcastState is the read-model a front end polls to render the
// current broadcast.
type BroadcastState struct {
	Status        BroadcastStatus
	CurrentGameID *uuid.UUID
	NextGameID    *uuid.UUID
	Countdown     time.Duration
	Message       string
}

// GetBroadcastState follows the same inspection rules as
// DetermineNextAction but projects them into a display-oriented shape.
func GetBroadcastState(season *models.Season, now time.Time) BroadcastState {
	action := DetermineNextAction(season, now)

	switch action.Type {
	case ActionCreateSeason:
		if season == nil {
			return BroadcastState{Status: BroadcastOffseason, Message: "No season has been created yet."}
		}
		return BroadcastState{Status: BroadcastOffseason, Message: "A new season is ready to begin."}
	case ActionNoAction:
		if action.GameID != nil {
			return BroadcastState{Status: BroadcastLive, CurrentGameID: action.GameID, Message: "Game in progress."}
		}
		if season != nil && season.Status == models.SeasonStatusOffseason {
			remaining := OffseasonDuration
			if season.CompletedAt != nil {
				if completedAt, err := time.Parse(time.RFC3339, *season.CompletedAt); err == nil {
					remaining = OffseasonDuration - now.Sub(completedAt)
					if remaining < 0 {
						remaining = 0
					}
				}
			}
			return BroadcastState{Status: BroadcastOffseason, Countdown: remaining, Message: "Offseason."}
		}
		return BroadcastState{Status: BroadcastIntermission, Message: "Waiting on the current slate to finish."}
	case ActionStartGame:
		return BroadcastState{Status: BroadcastIntermission, NextGameID: action.GameID, Message: "Next game is ready to start."}
	default:
		return BroadcastState{Status: BroadcastIntermission, Message: "Advancing to the next slate."}
	}
}

func gameWithStatus(week *models.WeekSchedule, status models.ScheduledGameStatus) *models.ScheduledGame {
	for i := range week.Games {
		if week.Games[i].Status == status {
			return &week.Games[i]
		}
	}
	return nil
}

// nextScheduledGame returns the featured scheduled game if one is both
// featured and still scheduled, else the first scheduled game in week
// order.
func nextScheduledGame(week *models.WeekSchedule) *models.ScheduledGame {
	if week.FeaturedGameID != nil {
		for i := range week.Games {
			if week.Games[i].ID == *week.FeaturedGameID && week.Games[i].Status == models.ScheduledGameScheduled {
				return &week.Games[i]
			}
		}
	}
	return gameWithStatus(week, models.ScheduledGameScheduled)
}
