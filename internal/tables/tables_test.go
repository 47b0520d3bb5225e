package tables

import (
	"testing"

	"github.com/gridiron-sim/core/internal/rng"
)

func TestRunOutcomeTablesLoaded(t *testing.T) {
	for _, ctx := range []string{"base", "goal_line", "short_yardage"} {
		rows := RunOutcome(ctx)
		if len(rows) == 0 {
			t.Fatalf("expected run outcome rows for context %q", ctx)
		}
	}
}

func TestPassOutcomeTablesLoaded(t *testing.T) {
	for _, ctx := range []string{"base", "screen", "play_action", "goal_line"} {
		rows := PassOutcome(ctx)
		if len(rows) == 0 {
			t.Fatalf("expected pass outcome rows for context %q", ctx)
		}
	}
}

func TestYardageProfilesCoverAllFamilies(t *testing.T) {
	for _, pt := range []string{"run", "pass_complete", "screen_complete", "scramble", "sack", "punt", "kickoff", "kneel"} {
		p := Yardage(pt)
		if p.Mean == 0 && p.StdDev == 0 && pt != "kneel" && pt != "sack" {
			t.Fatalf("unexpected zero-value yardage profile for %q", pt)
		}
	}
}

func TestFieldGoalBandDistanceOrdering(t *testing.T) {
	short := FieldGoalBandFor(25)
	long := FieldGoalBandFor(58)
	if short.Good <= long.Good {
		t.Fatalf("expected shorter field goals to have a higher success weight: short=%v long=%v", short.Good, long.Good)
	}
}

func TestPreSnapPenaltySampling(t *testing.T) {
	s := rng.New("penalty-test-seed-aabbccdd11223344", "client")
	for i := 0; i < 50; i++ {
		desc, yards := PreSnapPenalty(s)
		if desc == "" {
			t.Fatal("expected non-empty penalty description")
		}
		_ = yards
	}
}

func TestRouteConceptProducesCaddyEventually(t *testing.T) {
	s := rng.New("route-test-seed-aabbccdd11223344", "client")
	seen := false
	for i := 0; i < 2000; i++ {
		if RouteConcept(s) == "caddy" {
			seen = true
			break
		}
	}
	if !seen {
		t.Fatal("expected 'caddy' route concept to appear over 2000 draws")
	}
}

func TestFormationFallsBackForUnknownFamily(t *testing.T) {
	s := rng.New("formation-test-seed-aabbccdd11223344", "client")
	f := Formation(s, "nonexistent")
	if f == "" {
		t.Fatal("expected a non-empty fallback formation")
	}
}
