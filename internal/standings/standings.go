// Package standings derives win/loss/tie records and playoff seeding from
// a Season's completed games, joining games into a per-team record the way
// a standings query would, but computed in memory from the scores of the
// completed ScheduledGames in the season's schedule instead of read back
// from Postgres.
package standings

import (
	"sort"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
)

// Record is one team's aggregated record, equivalent in shape to the
// teacher's team_standings row.
type Record struct {
	TeamID            uuid.UUID
	Conference        models.Conference
	Division          models.Division
	Wins              int
	Losses            int
	Ties              int
	PointsFor         int
	PointsAgainst     int
	HomeWins          int
	HomeLosses        int
	AwayWins          int
	AwayLosses        int
	DivisionWins      int
	DivisionLosses    int
	ConferenceWins    int
	ConferenceLosses  int
	CurrentStreak     string // e.g. "W3", "L1", "" if winless/lossless history is empty
	DivisionRank      int
	ConferenceRank    int
	PlayoffSeed       int // 0 if not seeded
}

// WinPct returns wins / (wins+losses+ties), counting a tie as half a win,
// or 0 if no games have been played.
func (r Record) WinPct() float64 {
	total := r.Wins + r.Losses + r.Ties
	if total == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(total)
}

// PointDifferential is PointsFor - PointsAgainst.
func (r Record) PointDifferential() int {
	return r.PointsFor - r.PointsAgainst
}

// completedResult is one finished game reduced to the fields standings
// computation needs; it is derived from a completed ScheduledGame (home/away
// score + team ids).
type completedResult struct {
	homeTeamID uuid.UUID
	awayTeamID uuid.UUID
	homeScore  int
	awayScore  int
}

// Compute builds one Record per team from every completed game in the
// season's schedule, ranked within division and conference. teams supplies
// each team's conference/division (ScheduledGame only carries IDs).
func Compute(season *models.Season, teams []models.Team) []Record {
	teamByID := make(map[uuid.UUID]models.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	records := make(map[uuid.UUID]*Record, len(teams))
	for _, t := range teams {
		records[t.ID] = &Record{TeamID: t.ID, Conference: t.Conference, Division: t.Division}
	}

	streaks := make(map[uuid.UUID][]bool) // true = win, false = loss, ties omitted

	if season != nil {
		for _, week := range season.Schedule {
			for _, game := range week.Games {
				result, ok := toCompletedResult(game)
				if !ok {
					continue
				}
				applyResult(records, teamByID, streaks, result)
			}
		}
	}

	out := make([]Record, 0, len(records))
	for id, r := range records {
		r.CurrentStreak = deriveStreak(streaks[id])
		out = append(out, *r)
	}

	rankWithinDivision(out)
	rankWithinConference(out)
	assignPlayoffSeeds(out)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Conference != out[j].Conference {
			return out[i].Conference < out[j].Conference
		}
		if out[i].Division != out[j].Division {
			return out[i].Division < out[j].Division
		}
		return out[i].DivisionRank < out[j].DivisionRank
	})
	return out
}

func toCompletedResult(game models.ScheduledGame) (completedResult, bool) {
	if game.Status != models.ScheduledGameCompleted || game.HomeScore == nil || game.AwayScore == nil {
		return completedResult{}, false
	}
	return completedResult{
		homeTeamID: game.HomeTeamID,
		awayTeamID: game.AwayTeamID,
		homeScore:  *game.HomeScore,
		awayScore:  *game.AwayScore,
	}, true
}

func applyResult(records map[uuid.UUID]*Record, teamByID map[uuid.UUID]models.Team, streaks map[uuid.UUID][]bool, result completedResult) {
	home, homeOK := records[result.homeTeamID]
	away, awayOK := records[result.awayTeamID]
	if !homeOK || !awayOK {
		return
	}

	home.PointsFor += result.homeScore
	home.PointsAgainst += result.awayScore
	away.PointsFor += result.awayScore
	away.PointsAgainst += result.homeScore

	sameDivision := teamByID[result.homeTeamID].Division == teamByID[result.awayTeamID].Division &&
		teamByID[result.homeTeamID].Conference == teamByID[result.awayTeamID].Conference
	sameConference := teamByID[result.homeTeamID].Conference == teamByID[result.awayTeamID].Conference

	switch {
	case result.homeScore > result.awayScore:
		home.Wins++
		home.HomeWins++
		away.Losses++
		away.AwayLosses++
		if sameDivision {
			home.DivisionWins++
			away.DivisionLosses++
		}
		if sameConference {
			home.ConferenceWins++
			away.ConferenceLosses++
		}
		streaks[result.homeTeamID] = append(streaks[result.homeTeamID], true)
		streaks[result.awayTeamID] = append(streaks[result.awayTeamID], false)
	case result.awayScore > result.homeScore:
		away.Wins++
		away.AwayWins++
		home.Losses++
		home.HomeLosses++
		if sameDivision {
			away.DivisionWins++
			home.DivisionLosses++
		}
		if sameConference {
			away.ConferenceWins++
			home.ConferenceLosses++
		}
		streaks[result.awayTeamID] = append(streaks[result.awayTeamID], true)
		streaks[result.homeTeamID] = append(streaks[result.homeTeamID], false)
	default:
		home.Ties++
		away.Ties++
	}
}

// deriveStreak collapses a chronological win/loss history into the
// teacher's "W3"/"L1"-style current streak string.
func deriveStreak(history []bool) string {
	if len(history) == 0 {
		return ""
	}
	last := history[len(history)-1]
	count := 0
	for i := len(history) - 1; i >= 0 && history[i] == last; i-- {
		count++
	}
	letter := "L"
	if last {
		letter = "W"
	}
	return fmtStreak(letter, count)
}

func fmtStreak(letter string, count int) string {
	digits := [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	if count < 10 {
		return letter + digits[count]
	}
	return letter + "10+"
}

func rankWithinDivision(records []Record) {
	type divisionKey struct {
		conference models.Conference
		division   models.Division
	}
	groups := map[divisionKey][]int{}
	for i, r := range records {
		key := divisionKey{conference: r.Conference, division: r.Division}
		groups[key] = append(groups[key], i)
	}
	for _, idxs := range groups {
		sort.Slice(idxs, func(a, b int) bool { return betterRecord(records[idxs[a]], records[idxs[b]]) })
		for rank, idx := range idxs {
			records[idx].DivisionRank = rank + 1
		}
	}
}

func rankWithinConference(records []Record) {
	groups := map[models.Conference][]int{}
	for i, r := range records {
		groups[r.Conference] = append(groups[r.Conference], i)
	}
	for _, idxs := range groups {
		sort.Slice(idxs, func(a, b int) bool { return betterRecord(records[idxs[a]], records[idxs[b]]) })
		for rank, idx := range idxs {
			records[idx].ConferenceRank = rank + 1
		}
	}
}

// betterRecord orders by win percentage then point differential
// (win_pct, point_differential); records equal on both compare as equal,
// and there is no further tiebreak.
func betterRecord(a, b Record) bool {
	if a.WinPct() != b.WinPct() {
		return a.WinPct() > b.WinPct()
	}
	return a.PointDifferential() > b.PointDifferential()
}

// assignPlayoffSeeds assigns seeds 1-7 per conference to the top division
// winners plus wild cards, following the NFL's division-winners-first rule.
func assignPlayoffSeeds(records []Record) {
	byConference := map[models.Conference][]int{}
	for i, r := range records {
		byConference[r.Conference] = append(byConference[r.Conference], i)
	}

	for _, idxs := range byConference {
		divisionWinners := make([]int, 0, 4)
		others := make([]int, 0, len(idxs))
		for _, idx := range idxs {
			if records[idx].DivisionRank == 1 {
				divisionWinners = append(divisionWinners, idx)
			} else {
				others = append(others, idx)
			}
		}
		sort.Slice(divisionWinners, func(a, b int) bool { return betterRecord(records[divisionWinners[a]], records[divisionWinners[b]]) })
		sort.Slice(others, func(a, b int) bool { return betterRecord(records[others[a]], records[others[b]]) })

		seed := 1
		for _, idx := range divisionWinners {
			records[idx].PlayoffSeed = seed
			seed++
		}
		for i, idx := range others {
			if i >= 3 { // seeds 5-7 are the three wild cards
				break
			}
			records[idx].PlayoffSeed = seed
			seed++
		}
	}
}
