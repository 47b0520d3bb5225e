package standings

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
)

func intPtr(i int) *int { return &i }

func divisionTeams(conf models.Conference, div models.Division) []models.Team {
	teams := make([]models.Team, 4)
	for i := range teams {
		teams[i] = models.Team{ID: uuid.New(), Name: string(div) + string(rune('A'+i)), Conference: conf, Division: div}
	}
	return teams
}

func TestComputeTracksWinsLossesAndTies(t *testing.T) {
	teams := divisionTeams(models.ConferenceAFC, models.DivisionNorth)
	teamA, teamB := teams[0], teams[1]

	season := &models.Season{
		Schedule: []models.WeekSchedule{
			{Games: []models.ScheduledGame{
				{HomeTeamID: teamA.ID, AwayTeamID: teamB.ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(24), AwayScore: intPtr(10)},
			}},
			{Games: []models.ScheduledGame{
				{HomeTeamID: teamB.ID, AwayTeamID: teamA.ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(17), AwayScore: intPtr(17)},
			}},
		},
	}

	records := Compute(season, teams)
	byID := map[uuid.UUID]Record{}
	for _, r := range records {
		byID[r.TeamID] = r
	}

	a := byID[teamA.ID]
	if a.Wins != 1 || a.Losses != 0 || a.Ties != 1 {
		t.Fatalf("team A record wrong: %+v", a)
	}
	if a.PointsFor != 41 || a.PointsAgainst != 27 {
		t.Fatalf("team A points wrong: %+v", a)
	}

	b := byID[teamB.ID]
	if b.Wins != 0 || b.Losses != 1 || b.Ties != 1 {
		t.Fatalf("team B record wrong: %+v", b)
	}
}

func TestComputeIgnoresIncompleteGames(t *testing.T) {
	teams := divisionTeams(models.ConferenceAFC, models.DivisionNorth)
	teamA, teamB := teams[0], teams[1]

	season := &models.Season{
		Schedule: []models.WeekSchedule{
			{Games: []models.ScheduledGame{
				{HomeTeamID: teamA.ID, AwayTeamID: teamB.ID, Status: models.ScheduledGameScheduled},
			}},
		},
	}

	records := Compute(season, teams)
	for _, r := range records {
		if r.Wins != 0 || r.Losses != 0 || r.Ties != 0 {
			t.Fatalf("expected no games counted, got %+v", r)
		}
	}
}

func TestComputeRanksDivisionByWinPercentageThenPointDifferential(t *testing.T) {
	teams := divisionTeams(models.ConferenceAFC, models.DivisionNorth)
	top, second, third, fourth := teams[0], teams[1], teams[2], teams[3]

	season := &models.Season{
		Schedule: []models.WeekSchedule{
			{Games: []models.ScheduledGame{
				{HomeTeamID: top.ID, AwayTeamID: fourth.ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(30), AwayScore: intPtr(3)},
				{HomeTeamID: second.ID, AwayTeamID: third.ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(20), AwayScore: intPtr(17)},
			}},
		},
	}

	records := Compute(season, teams)
	byID := map[uuid.UUID]Record{}
	for _, r := range records {
		byID[r.TeamID] = r
	}

	if byID[top.ID].DivisionRank != 1 {
		t.Fatalf("expected team with largest point differential to rank 1st, got rank %d", byID[top.ID].DivisionRank)
	}
	if byID[fourth.ID].DivisionRank != 4 {
		t.Fatalf("expected blown-out loser to rank last, got rank %d", byID[fourth.ID].DivisionRank)
	}
}

func TestComputeAssignsDivisionWinnersSeedsFirst(t *testing.T) {
	north := divisionTeams(models.ConferenceAFC, models.DivisionNorth)
	south := divisionTeams(models.ConferenceAFC, models.DivisionSouth)
	east := divisionTeams(models.ConferenceAFC, models.DivisionEast)
	west := divisionTeams(models.ConferenceAFC, models.DivisionWest)
	allTeams := append(append(append(north, south...), east...), west...)

	// Give exactly one team per division a win so it tops its division; no
	// other games played, so wild-card ordering among 0-0-0 teams is
	// whatever the stable tiebreak produces — only seeds 1-4 are checked.
	games := []models.ScheduledGame{
		{HomeTeamID: north[0].ID, AwayTeamID: north[1].ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(20), AwayScore: intPtr(10)},
		{HomeTeamID: south[0].ID, AwayTeamID: south[1].ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(20), AwayScore: intPtr(10)},
		{HomeTeamID: east[0].ID, AwayTeamID: east[1].ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(20), AwayScore: intPtr(10)},
		{HomeTeamID: west[0].ID, AwayTeamID: west[1].ID, Status: models.ScheduledGameCompleted, HomeScore: intPtr(20), AwayScore: intPtr(10)},
	}
	season := &models.Season{Schedule: []models.WeekSchedule{{Games: games}}}

	records := Compute(season, allTeams)
	byID := map[uuid.UUID]Record{}
	for _, r := range records {
		byID[r.TeamID] = r
	}

	winners := []uuid.UUID{north[0].ID, south[0].ID, east[0].ID, west[0].ID}
	for _, id := range winners {
		seed := byID[id].PlayoffSeed
		if seed < 1 || seed > 4 {
			t.Fatalf("expected division winner %s to get a top-4 seed, got %d", id, seed)
		}
	}
}
