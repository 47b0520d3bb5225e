package broadcast

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/internal/engine"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/scheduler"
)

// DBController is the production Controller, backed directly by Postgres
// and the pure engine/scheduler packages. It is the concrete counterpart
// to the fakeController used in this package's own tests.
type DBController struct {
	seasons *db.SeasonQueries
	teams   *db.TeamQueries
	games   *db.GameQueries
}

// NewDBController wires a Controller against the live database.
func NewDBController() *DBController {
	return &DBController{
		seasons: &db.SeasonQueries{},
		teams:   &db.TeamQueries{},
		games:   &db.GameQueries{},
	}
}

func (c *DBController) CurrentSeason(ctx context.Context) (*models.Season, error) {
	return c.seasons.Current(ctx)
}

// CreateSeason generates a fresh 18-week regular-season schedule over the
// current team catalog and pads it out to models.TotalSeasonWeeks with
// empty playoff weeks, persisting the result as the new current season.
func (c *DBController) CreateSeason(ctx context.Context) (*models.Season, error) {
	teams, err := c.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}

	serverSeed, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("generating server seed: %w", err)
	}
	clientSeed, err := randomHex(8)
	if err != nil {
		return nil, fmt.Errorf("generating client seed: %w", err)
	}

	regularWeeks, err := scheduler.GenerateSeasonSchedule(teams, serverSeed, clientSeed)
	if err != nil {
		return nil, fmt.Errorf("generating season schedule: %w", err)
	}

	schedule := make([]models.WeekSchedule, models.TotalSeasonWeeks)
	copy(schedule, regularWeeks)
	for i := len(regularWeeks); i < models.TotalSeasonWeeks; i++ {
		schedule[i] = models.WeekSchedule{Week: i + 1, Status: models.WeekNotStarted}
	}

	previous, err := c.seasons.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading previous season: %w", err)
	}
	seasonNumber := 1
	if previous != nil {
		seasonNumber = previous.SeasonNumber + 1
	}

	season := &models.Season{
		ID:           uuid.New(),
		SeasonNumber: seasonNumber,
		Status:       models.SeasonStatusRegularSeason,
		CurrentWeek:  1,
		TotalWeeks:   models.TotalSeasonWeeks,
		Schedule:     schedule,
	}

	if err := c.seasons.Save(ctx, season); err != nil {
		return nil, fmt.Errorf("saving new season: %w", err)
	}
	return season, nil
}

// StartGame runs the game simulation for a scheduled game and persists
// both the simulated result and the scheduled game's terminal status.
// Simulation is synchronous and pure; this is the one place that bridges
// it to the stateful schedule (ScheduledGame.status moves scheduled ->
// simulating -> completed in one dispatch, rather than lingering in
// "broadcasting" the way a live play-by-play front end would drive it —
// no caller in this repo streams events incrementally).
func (c *DBController) StartGame(ctx context.Context, gameID uuid.UUID) error {
	season, err := c.seasons.Current(ctx)
	if err != nil || season == nil {
		return fmt.Errorf("loading current season: %w", err)
	}

	var scheduled *models.ScheduledGame
	for wi := range season.Schedule {
		for gi := range season.Schedule[wi].Games {
			if season.Schedule[wi].Games[gi].ID == gameID {
				scheduled = &season.Schedule[wi].Games[gi]
			}
		}
	}
	if scheduled == nil {
		return fmt.Errorf("game %s not found in current season", gameID)
	}

	if err := db.UpdateScheduledGameStatus(ctx, season, gameID, models.ScheduledGameSimulating, nil, nil); err != nil {
		return fmt.Errorf("marking game simulating: %w", err)
	}

	homeTeam, err := c.teams.GetByID(ctx, scheduled.HomeTeamID)
	if err != nil || homeTeam == nil {
		return fmt.Errorf("loading home team: %w", err)
	}
	awayTeam, err := c.teams.GetByID(ctx, scheduled.AwayTeamID)
	if err != nil || awayTeam == nil {
		return fmt.Errorf("loading away team: %w", err)
	}
	homeRoster, err := c.teams.GetRoster(ctx, homeTeam.ID)
	if err != nil {
		return fmt.Errorf("loading home roster: %w", err)
	}
	awayRoster, err := c.teams.GetRoster(ctx, awayTeam.ID)
	if err != nil {
		return fmt.Errorf("loading away roster: %w", err)
	}

	serverSeed, err := randomHex(32)
	if err != nil {
		return fmt.Errorf("generating server seed: %w", err)
	}

	config := models.GameConfig{
		HomeTeam:   *homeTeam,
		AwayTeam:   *awayTeam,
		HomeRoster: homeRoster,
		AwayRoster: awayRoster,
		GameType:   scheduled.GameType,
		ServerSeed: serverSeed,
		ClientSeed: gameID.String(),
	}

	simulated, err := engine.Simulate(config, nil)
	if err != nil {
		return fmt.Errorf("simulating game: %w", err)
	}

	if err := c.games.SaveSimulatedGame(ctx, gameID, simulated); err != nil {
		return fmt.Errorf("saving simulated game: %w", err)
	}

	season, err = c.seasons.Current(ctx)
	if err != nil || season == nil {
		return fmt.Errorf("reloading season: %w", err)
	}
	homeScore := simulated.FinalScore.Home
	awayScore := simulated.FinalScore.Away
	if err := db.UpdateScheduledGameStatus(ctx, season, gameID, models.ScheduledGameCompleted, &homeScore, &awayScore); err != nil {
		return fmt.Errorf("marking game completed: %w", err)
	}
	return nil
}

// AdvanceWeek moves the season into its next regular-season week.
func (c *DBController) AdvanceWeek(ctx context.Context, season *models.Season) error {
	season.CurrentWeek++
	return c.seasons.Save(ctx, season)
}

// StartPlayoffs transitions the season into the wild-card round. Building
// the actual playoff bracket (seeding matchups into week 19) is left to
// the standings package's seeding output, applied by a caller with access
// to the computed records; here the orchestrator only flips status/week.
func (c *DBController) StartPlayoffs(ctx context.Context, season *models.Season) error {
	season.Status = models.SeasonStatusWildCard
	season.CurrentWeek++
	return c.seasons.Save(ctx, season)
}

// AdvancePlayoffs moves the season to the next playoff round.
func (c *DBController) AdvancePlayoffs(ctx context.Context, season *models.Season) error {
	switch season.Status {
	case models.SeasonStatusWildCard:
		season.Status = models.SeasonStatusDivisional
	case models.SeasonStatusDivisional:
		season.Status = models.SeasonStatusConferenceChampionship
	case models.SeasonStatusConferenceChampionship:
		season.Status = models.SeasonStatusSuperBowl
	}
	season.CurrentWeek++
	return c.seasons.Save(ctx, season)
}

// EndSeason closes out the season and starts the offseason cooldown.
func (c *DBController) EndSeason(ctx context.Context, season *models.Season) error {
	season.Status = models.SeasonStatusOffseason
	now := time.Now().UTC().Format(time.RFC3339)
	season.CompletedAt = &now
	return c.seasons.Save(ctx, season)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
