// Package scheduler builds the regular-season matchup set and makes the
// stateless broadcast decision over a persisted Season. The season
// scheduler takes a server/client seed pair and builds its own rng.Stream;
// the broadcast decision takes a caller-supplied "now". Game IDs in a
// generated schedule come from uuid.New and are not derived from the seed.
package scheduler

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/rng"
)

const (
	requiredTeamCount       = 32
	conferenceCount         = 2
	divisionsPerConference  = 4
	teamsPerDivision        = 4
	divisionalGamesPerTeam  = teamsPerDivision - 1 // 3 rivals
	maxInterConferenceGames = 4
)

// ScheduleError reports why generate_season_schedule rejected a league.
type ScheduleError struct {
	Reason string
}

func (e *ScheduleError) Error() string { return "scheduler: " + e.Reason }

type divisionKey struct {
	conference models.Conference
	division   models.Division
}

type matchup struct {
	home, away uuid.UUID
}

// GenerateSeasonSchedule builds an 18-week regular-season schedule for a
// 32-team league, honoring a priority-ordered set of matchup constraints.
// Matchups, weeks and home/away assignment are a deterministic function of
// (teams, seed): identical input produces an identical schedule apart from
// the game IDs, which are random UUIDs; different seeds visibly differ.
func GenerateSeasonSchedule(teams []models.Team, serverSeed, clientSeed string) ([]models.WeekSchedule, error) {
	groups, err := groupByDivision(teams)
	if err != nil {
		return nil, err
	}

	s := rng.New(serverSeed, clientSeed)

	var matchups []matchup

	divKeys := sortedDivisionKeys(groups)

	// Divisional: every team plays every divisional rival twice.
	for _, key := range divKeys {
		div := groups[key]
		for i := 0; i < len(div); i++ {
			for j := i + 1; j < len(div); j++ {
				matchups = append(matchups, matchup{home: div[i], away: div[j]})
				matchups = append(matchups, matchup{home: div[j], away: div[i]})
			}
		}
	}

	// Intra-conference, non-divisional: the 4 divisions in each conference
	// are split into 2 disjoint pairs, each division crossing with exactly
	// one other. Which of the 3 possible pairings applies is chosen by
	// the seeded stream so different seeds produce different schedules.
	intraPairings := [][2][2]int{
		{{0, 1}, {2, 3}},
		{{0, 2}, {1, 3}},
		{{0, 3}, {1, 2}},
	}
	intraPairing := intraPairings[s.NextInt(0, len(intraPairings)-1)]
	interOffset := s.NextInt(0, divisionsPerConference-1)

	for confIdx := 0; confIdx < conferenceCount; confIdx++ {
		conf := conferenceFor(confIdx)
		for _, pair := range intraPairing {
			a := groups[divisionKey{conference: conf, division: divisionFor(pair[0])}]
			b := groups[divisionKey{conference: conf, division: divisionFor(pair[1])}]
			matchups = append(matchups, crossDivision(a, b)...)
		}
	}

	// Inter-conference: each division in conference A crosses with one
	// division in conference B.
	for divIdx := 0; divIdx < divisionsPerConference; divIdx++ {
		partnerIdx := (divIdx + interOffset) % divisionsPerConference
		a := groups[divisionKey{conference: models.ConferenceAFC, division: divisionFor(divIdx)}]
		b := groups[divisionKey{conference: models.ConferenceNFC, division: divisionFor(partnerIdx)}]
		matchups = append(matchups, crossDivision(a, b)...)
	}

	// Shuffle placement order with the seeded stream so identical seeds
	// reproduce identical week assignments and different seeds reorder
	// the greedy placement: shuffle with the RNG, then place each
	// matchup into the earliest legal week.
	order := make([]int, len(matchups))
	for i := range order {
		order[i] = i
	}
	rng.NextShuffle(s, order)

	weeks := make([]models.WeekSchedule, models.RegularSeasonWeeks)
	for i := range weeks {
		weeks[i].Week = i + 1
	}
	teamWeeksUsed := make(map[uuid.UUID]map[int]bool)

	for _, idx := range order {
		m := matchups[idx]
		if teamWeeksUsed[m.home] == nil {
			teamWeeksUsed[m.home] = map[int]bool{}
		}
		if teamWeeksUsed[m.away] == nil {
			teamWeeksUsed[m.away] = map[int]bool{}
		}
		week := earliestLegalWeek(teamWeeksUsed, m.home, m.away)
		if week == 0 {
			// No legal week remains for this matchup; drop it rather
			// than fail the whole generation.
			continue
		}
		teamWeeksUsed[m.home][week] = true
		teamWeeksUsed[m.away][week] = true

		game := models.ScheduledGame{
			ID:         uuid.New(),
			Week:       week,
			HomeTeamID: m.home,
			AwayTeamID: m.away,
			GameType:   models.GameTypeRegular,
			Status:     models.ScheduledGameScheduled,
		}
		weeks[week-1].Games = append(weeks[week-1].Games, game)
	}

	for i := range weeks {
		if len(weeks[i].Games) > 0 {
			featured := s.NextInt(0, len(weeks[i].Games)-1)
			id := weeks[i].Games[featured].ID
			weeks[i].FeaturedGameID = &id
		}
		weeks[i].Status = weeks[i].DeriveStatus()
	}

	return weeks, nil
}

// crossDivision returns every (a[i], b[j]) pairing, home assigned so each
// team in a and in b ends up with exactly half home, half away games
// against the other division.
func crossDivision(a, b []uuid.UUID) []matchup {
	out := make([]matchup, 0, len(a)*len(b))
	for i, ta := range a {
		for j, tb := range b {
			if (i+j)%2 == 0 {
				out = append(out, matchup{home: ta, away: tb})
			} else {
				out = append(out, matchup{home: tb, away: ta})
			}
		}
	}
	return out
}

func earliestLegalWeek(used map[uuid.UUID]map[int]bool, home, away uuid.UUID) int {
	for week := 1; week <= models.RegularSeasonWeeks; week++ {
		if used[home][week] || used[away][week] {
			continue
		}
		return week
	}
	return 0
}

func conferenceFor(idx int) models.Conference {
	if idx == 0 {
		return models.ConferenceAFC
	}
	return models.ConferenceNFC
}

func divisionFor(idx int) models.Division {
	switch idx {
	case 0:
		return models.DivisionNorth
	case 1:
		return models.DivisionSouth
	case 2:
		return models.DivisionEast
	default:
		return models.DivisionWest
	}
}

func sortedDivisionKeys(groups map[divisionKey][]uuid.UUID) []divisionKey {
	keys := make([]divisionKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].conference != keys[j].conference {
			return keys[i].conference < keys[j].conference
		}
		return keys[i].division < keys[j].division
	})
	return keys
}

// groupByDivision validates the league shape (exactly 32 teams across 2
// conferences of 4 divisions of 4 teams) and returns each division's team
// IDs.
func groupByDivision(teams []models.Team) (map[divisionKey][]uuid.UUID, error) {
	if len(teams) != requiredTeamCount {
		return nil, &ScheduleError{Reason: fmt.Sprintf("expected exactly %d teams, got %d", requiredTeamCount, len(teams))}
	}

	groups := make(map[divisionKey][]uuid.UUID)
	seen := make(map[uuid.UUID]bool)
	for _, t := range teams {
		if seen[t.ID] {
			return nil, &ScheduleError{Reason: fmt.Sprintf("duplicate team id %s", t.ID)}
		}
		seen[t.ID] = true
		key := divisionKey{conference: t.Conference, division: t.Division}
		groups[key] = append(groups[key], t.ID)
	}

	expectedDivisions := conferenceCount * divisionsPerConference
	if len(groups) != expectedDivisions {
		return nil, &ScheduleError{Reason: fmt.Sprintf("expected %d distinct conference/division groups, got %d", expectedDivisions, len(groups))}
	}
	for key, ids := range groups {
		if len(ids) != teamsPerDivision {
			return nil, &ScheduleError{Reason: fmt.Sprintf("division %s/%s has %d teams, need exactly %d", key.conference, key.division, len(ids), teamsPerDivision)}
		}
	}
	return groups, nil
}
