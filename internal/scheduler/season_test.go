package scheduler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
)

func testLeague() []models.Team {
	conferences := []models.Conference{models.ConferenceAFC, models.ConferenceNFC}
	divisions := []models.Division{models.DivisionNorth, models.DivisionSouth, models.DivisionEast, models.DivisionWest}

	var teams []models.Team
	for _, conf := range conferences {
		for _, div := range divisions {
			for i := 0; i < teamsPerDivision; i++ {
				teams = append(teams, models.Team{
					ID:         uuid.New(),
					Conference: conf,
					Division:   div,
				})
			}
		}
	}
	return teams
}

func TestGenerateSeasonScheduleIsDeterministicForIdenticalSeeds(t *testing.T) {
	teams := testLeague()

	a, err := GenerateSeasonSchedule(teams, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "client-1")
	if err != nil {
		t.Fatalf("GenerateSeasonSchedule() error = %v", err)
	}
	b, err := GenerateSeasonSchedule(teams, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "client-1")
	if err != nil {
		t.Fatalf("GenerateSeasonSchedule() error = %v", err)
	}

	for w := range a {
		if len(a[w].Games) != len(b[w].Games) {
			t.Fatalf("week %d: game count differs between identical-seed runs", w+1)
		}
		for i := range a[w].Games {
			if a[w].Games[i].HomeTeamID != b[w].Games[i].HomeTeamID || a[w].Games[i].AwayTeamID != b[w].Games[i].AwayTeamID {
				t.Fatalf("week %d game %d: matchup differs between identical-seed runs", w+1, i)
			}
		}
	}
}

func TestGenerateSeasonScheduleProducesExpectedWeekCount(t *testing.T) {
	teams := testLeague()
	weeks, err := GenerateSeasonSchedule(teams, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", "client-2")
	if err != nil {
		t.Fatalf("GenerateSeasonSchedule() error = %v", err)
	}
	if len(weeks) != models.RegularSeasonWeeks {
		t.Fatalf("len(weeks) = %d, want %d", len(weeks), models.RegularSeasonWeeks)
	}
}

func TestGenerateSeasonScheduleNeverDoubleBooksATeamInOneWeek(t *testing.T) {
	teams := testLeague()
	weeks, err := GenerateSeasonSchedule(teams, "cccccccccccccccccccccccccccccccc", "client-3")
	if err != nil {
		t.Fatalf("GenerateSeasonSchedule() error = %v", err)
	}

	for _, week := range weeks {
		seen := map[uuid.UUID]bool{}
		for _, game := range week.Games {
			if seen[game.HomeTeamID] || seen[game.AwayTeamID] {
				t.Fatalf("week %d: a team appears in more than one game", week.Week)
			}
			seen[game.HomeTeamID] = true
			seen[game.AwayTeamID] = true
		}
	}
}

func TestGenerateSeasonScheduleRejectsWrongTeamCount(t *testing.T) {
	teams := testLeague()[:31]
	_, err := GenerateSeasonSchedule(teams, "dddddddddddddddddddddddddddddddd", "client-4")
	if err == nil {
		t.Fatal("GenerateSeasonSchedule() error = nil, want error for a 31-team league")
	}
}

func TestGenerateSeasonScheduleEveryWeekHasAFeaturedGame(t *testing.T) {
	teams := testLeague()
	weeks, err := GenerateSeasonSchedule(teams, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", "client-5")
	if err != nil {
		t.Fatalf("GenerateSeasonSchedule() error = %v", err)
	}
	for _, week := range weeks {
		if len(week.Games) == 0 {
			continue
		}
		if week.FeaturedGameID == nil {
			t.Fatalf("week %d: no featured game selected", week.Week)
		}
	}
}
