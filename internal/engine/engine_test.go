package engine

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
)

func testTeam(name string, dome bool) models.Team {
	return models.Team{
		ID:           uuid.New(),
		Name:         name,
		Abbreviation: name[:3],
		City:         name,
		Conference:   models.ConferenceAFC,
		Division:     models.DivisionNorth,
		Dome:         dome,
	}
}

func testRoster() models.Roster {
	positions := []string{
		"QB", "QB", "RB", "RB", "RB", "WR", "WR", "WR", "WR", "TE", "TE",
		"K", "P", "OL", "OL", "OL", "OL", "OL",
		"CB", "CB", "S", "S", "LB", "LB", "LB",
	}
	roster := models.Roster{TeamID: uuid.New()}
	for i, pos := range positions {
		roster.Players = append(roster.Players, models.Player{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("%s-%d", pos, i),
			Position: pos,
			Status:   models.PlayerStatusActive,
			Ratings:  models.Ratings{Speed: 70, Strength: 70, Accuracy: 70, Agility: 70, Awareness: 70},
		})
	}
	return roster
}

func testConfig(serverSeed, clientSeed string) models.GameConfig {
	return models.GameConfig{
		HomeTeam:   testTeam("Home", false),
		AwayTeam:   testTeam("Away", false),
		HomeRoster: testRoster(),
		AwayRoster: testRoster(),
		GameType:   models.GameTypeRegular,
		ServerSeed: serverSeed,
		ClientSeed: clientSeed,
	}
}

func TestSimulateIsDeterministicForIdenticalSeeds(t *testing.T) {
	config := testConfig("aabbccddeeff00112233445566778899", "client-one")

	first, err := Simulate(config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Simulate(config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.FinalScore != second.FinalScore {
		t.Fatalf("expected identical final scores, got %+v vs %+v", first.FinalScore, second.FinalScore)
	}
	if first.TotalPlays != second.TotalPlays {
		t.Fatalf("expected identical play counts, got %d vs %d", first.TotalPlays, second.TotalPlays)
	}
	if len(first.Events) != len(second.Events) {
		t.Fatalf("expected identical event counts, got %d vs %d", len(first.Events), len(second.Events))
	}
	for i := range first.Events {
		if first.Events[i].PlayResult.Type != second.Events[i].PlayResult.Type {
			t.Fatalf("event %d diverged: %q vs %q", i, first.Events[i].PlayResult.Type, second.Events[i].PlayResult.Type)
		}
	}
}

func TestSimulateDifferentClientSeedsDiverge(t *testing.T) {
	a := testConfig("aabbccddeeff00112233445566778899", "client-a")
	b := testConfig("aabbccddeeff00112233445566778899", "client-b")

	first, err := Simulate(a, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Simulate(b, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.FinalScore == second.FinalScore && first.TotalPlays == second.TotalPlays {
		t.Fatal("expected different client seeds to produce a different game somewhere in score or play count")
	}
}

func TestSimulateServerSeedHashIsStableCommitment(t *testing.T) {
	config := testConfig("00112233445566778899aabbccddeeff0011", "client-hash")
	game, err := Simulate(config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(game.ServerSeedHash) != 64 {
		t.Fatalf("expected 64 hex character commitment hash, got %d chars", len(game.ServerSeedHash))
	}
	if game.ServerSeed != config.ServerSeed {
		t.Fatal("revealed server seed must match the seed used to drive the simulation")
	}
}

func TestSimulateDomeTeamAlwaysGetsFixedWeather(t *testing.T) {
	config := testConfig("aabbccddeeff00112233445566778899", "dome-client")
	config.HomeTeam.Dome = true
	game, err := Simulate(config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Weather != models.DomeWeather() {
		t.Fatalf("expected fixed dome weather, got %+v", game.Weather)
	}
}

func TestSimulateStaysWithinPlayBounds(t *testing.T) {
	for i := 0; i < 10; i++ {
		config := testConfig(fmt.Sprintf("boundsseed%029d", i), fmt.Sprintf("client-%d", i))
		game, err := Simulate(config, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if game.TotalPlays < 1 || game.TotalPlays > MaxPlays {
			t.Fatalf("total plays %d out of bounds [1, %d]", game.TotalPlays, MaxPlays)
		}
		if game.FinalScore.Home < 0 || game.FinalScore.Away < 0 {
			t.Fatalf("negative final score: %+v", game.FinalScore)
		}
	}
}

func TestSimulateCancellationStopsEarlyWithPartialResult(t *testing.T) {
	config := testConfig("aabbccddeeff00112233445566778899", "cancel-client")
	played := 0
	shouldCancel := func() bool {
		played++
		return played > 5
	}

	game, err := Simulate(config, shouldCancel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Status != models.GameStatusCanceled {
		t.Fatalf("expected canceled status, got %q", game.Status)
	}
	if game.TotalPlays >= MaxPlays {
		t.Fatal("expected a canceled game to stop well short of the play cap")
	}
}

func TestSimulateRejectsUndersizedRoster(t *testing.T) {
	config := testConfig("aabbccddeeff00112233445566778899", "roster-client")
	config.HomeRoster.Players = config.HomeRoster.Players[:10]

	_, err := Simulate(config, nil)
	if err == nil {
		t.Fatal("expected an error for an undersized roster")
	}
	var verr *ValidationError
	if !asValidationError(err, &verr) {
		t.Fatalf("expected a *ValidationError, got %T: %v", err, err)
	}
}

func TestSimulateRejectsShortServerSeed(t *testing.T) {
	config := testConfig("short", "client")
	_, err := Simulate(config, nil)
	if err == nil {
		t.Fatal("expected an error for an undersized server seed")
	}
}

func TestSimulateMVPIsAlwaysAssignedWhenPlaysOccurred(t *testing.T) {
	config := testConfig("aabbccddeeff00112233445566778899", "mvp-client")
	game, err := Simulate(config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.MVPPlayerID == uuid.Nil {
		t.Fatal("expected a non-nil MVP once plays have occurred")
	}
	if _, ok := game.BoxScore.Lines[game.MVPPlayerID]; !ok {
		t.Fatal("MVP player must have a box score line")
	}
}

func TestSimulateEventsCarryImmutableSnapshots(t *testing.T) {
	config := testConfig("aabbccddeeff00112233445566778899", "snapshot-client")
	game, err := Simulate(config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, event := range game.Events {
		if event.StateBefore.Clock.TwoMinuteWarningFired == nil {
			continue
		}
		// Mutating a later snapshot's map must never retroactively affect
		// an earlier one: each snapshot owns its own map.
		event.StateBefore.Clock.TwoMinuteWarningFired["sentinel"] = true
		for j := 0; j < i; j++ {
			if game.Events[j].StateAfter.Clock.TwoMinuteWarningFired["sentinel"] {
				t.Fatalf("event %d's snapshot was mutated by event %d's snapshot map aliasing", j, i)
			}
		}
	}
}

// asValidationError is a small helper so the test doesn't need a type
// switch inline; it mirrors errors.As without requiring an errors import
// for this one assertion.
func asValidationError(err error, target **ValidationError) bool {
	if verr, ok := err.(*ValidationError); ok {
		*target = verr
		return true
	}
	return false
}
