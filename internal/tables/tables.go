// Package tables holds the compile-time-static weighted distributions the
// resolver samples from: outcome tables, yardage profiles, and
// formation/route-concept tables. They are loaded once from embedded CSV
// fixtures at package init and never mutated afterward.
package tables

import (
	"embed"

	"github.com/gocarina/gocsv"
	"github.com/gridiron-sim/core/internal/rng"
)

//go:embed data/*.csv
var dataFS embed.FS

func mustLoad[T any](filename string) []T {
	f, err := dataFS.Open("data/" + filename)
	if err != nil {
		panic("tables: missing embedded fixture " + filename + ": " + err.Error())
	}
	defer f.Close()

	var rows []T
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		panic("tables: malformed fixture " + filename + ": " + err.Error())
	}
	return rows
}

// runOutcomeRow / passOutcomeRow mirror run_outcomes.csv / pass_outcomes.csv.
type runOutcomeRow struct {
	Context string  `csv:"context"`
	Outcome string  `csv:"outcome"`
	Weight  float64 `csv:"weight"`
}

type passOutcomeRow struct {
	Context string  `csv:"context"`
	Outcome string  `csv:"outcome"`
	Weight  float64 `csv:"weight"`
}

type yardageProfileRow struct {
	PlayType       string  `csv:"play_type"`
	Mean           float64 `csv:"mean"`
	StdDev         float64 `csv:"stddev"`
	Min            float64 `csv:"min"`
	Max            float64 `csv:"max"`
	BigPlayProb    float64 `csv:"big_play_prob"`
	BigPlayMean    float64 `csv:"big_play_mean"`
	BigPlayStdDev  float64 `csv:"big_play_stddev"`
	BigPlayMin     float64 `csv:"big_play_min"`
	BigPlayMax     float64 `csv:"big_play_max"`
}

type weightedOutcomeRow struct {
	Name   string  `csv:"name"`
	Weight float64 `csv:"weight"`
}

type fieldGoalRow struct {
	MinDistance   int     `csv:"min_distance"`
	MaxDistance   int     `csv:"max_distance"`
	GoodWeight    float64 `csv:"good_weight"`
	MissWeight    float64 `csv:"miss_weight"`
	BlockedWeight float64 `csv:"blocked_weight"`
}

type penaltyRow struct {
	Phase       string  `csv:"phase"`
	Description string  `csv:"description"`
	Yards       int     `csv:"yards"`
	Weight      float64 `csv:"weight"`
}

type formationRow struct {
	PlayFamily string  `csv:"play_family"`
	Formation  string  `csv:"formation"`
	Weight     float64 `csv:"weight"`
}

// YardageProfile is the clamp/shape parameters for one play type's yardage
// distribution, including its big-play carve-out.
type YardageProfile struct {
	Mean, StdDev, Min, Max             float64
	BigPlayProb                        float64
	BigPlayMean, BigPlayStdDev         float64
	BigPlayMin, BigPlayMax             float64
}

// FieldGoalBand is the success/miss/blocked weighting for one distance band.
type FieldGoalBand struct {
	MinDistance, MaxDistance int
	Good, Miss, Blocked      float64
}

var (
	runOutcomes       map[string][]rng.Choice[string]
	passOutcomes      map[string][]rng.Choice[string]
	yardageProfiles   map[string]YardageProfile
	kickoffOutcomes   []rng.Choice[string]
	puntOutcomes      []rng.Choice[string]
	fieldGoalBands    []FieldGoalBand
	preSnapPenalties  []rng.Choice[penaltyRow]
	postPlayPenalties []rng.Choice[penaltyRow]
	formations        map[string][]rng.Choice[string]
	routes            []rng.Choice[string]
	protectionSchemes []rng.Choice[string]
	runSchemes        []rng.Choice[string]
	motionTypes       []rng.Choice[string]
)

func init() {
	loadOutcomeTables()
	loadYardageProfiles()
	loadKickingTables()
	loadPenalties()
	loadFormationTables()
}

func loadOutcomeTables() {
	runOutcomes = map[string][]rng.Choice[string]{}
	for _, row := range mustLoad[runOutcomeRow]("run_outcomes.csv") {
		runOutcomes[row.Context] = append(runOutcomes[row.Context], rng.Choice[string]{Value: row.Outcome, Weight: row.Weight})
	}
	passOutcomes = map[string][]rng.Choice[string]{}
	for _, row := range mustLoad[passOutcomeRow]("pass_outcomes.csv") {
		passOutcomes[row.Context] = append(passOutcomes[row.Context], rng.Choice[string]{Value: row.Outcome, Weight: row.Weight})
	}
}

func loadYardageProfiles() {
	yardageProfiles = map[string]YardageProfile{}
	for _, row := range mustLoad[yardageProfileRow]("yardage_profiles.csv") {
		yardageProfiles[row.PlayType] = YardageProfile{
			Mean: row.Mean, StdDev: row.StdDev, Min: row.Min, Max: row.Max,
			BigPlayProb:   row.BigPlayProb,
			BigPlayMean:   row.BigPlayMean,
			BigPlayStdDev: row.BigPlayStdDev,
			BigPlayMin:    row.BigPlayMin,
			BigPlayMax:    row.BigPlayMax,
		}
	}
}

func loadKickingTables() {
	for _, row := range mustLoad[weightedOutcomeRow]("kickoff_outcomes.csv") {
		kickoffOutcomes = append(kickoffOutcomes, rng.Choice[string]{Value: row.Name, Weight: row.Weight})
	}
	for _, row := range mustLoad[weightedOutcomeRow]("punt_outcomes.csv") {
		puntOutcomes = append(puntOutcomes, rng.Choice[string]{Value: row.Name, Weight: row.Weight})
	}
	for _, row := range mustLoad[fieldGoalRow]("field_goal_success.csv") {
		fieldGoalBands = append(fieldGoalBands, FieldGoalBand{
			MinDistance: row.MinDistance, MaxDistance: row.MaxDistance,
			Good: row.GoodWeight, Miss: row.MissWeight, Blocked: row.BlockedWeight,
		})
	}
}

func loadPenalties() {
	for _, row := range mustLoad[penaltyRow]("penalties.csv") {
		choice := rng.Choice[penaltyRow]{Value: row, Weight: row.Weight}
		if row.Phase == "pre_snap" {
			preSnapPenalties = append(preSnapPenalties, choice)
		} else {
			postPlayPenalties = append(postPlayPenalties, choice)
		}
	}
}

func loadFormationTables() {
	formations = map[string][]rng.Choice[string]{}
	for _, row := range mustLoad[formationRow]("formations.csv") {
		formations[row.PlayFamily] = append(formations[row.PlayFamily], rng.Choice[string]{Value: row.Formation, Weight: row.Weight})
	}
	for _, row := range mustLoad[weightedOutcomeRow]("routes.csv") {
		routes = append(routes, rng.Choice[string]{Value: row.Name, Weight: row.Weight})
	}
	for _, row := range mustLoad[weightedOutcomeRow]("protection_schemes.csv") {
		protectionSchemes = append(protectionSchemes, rng.Choice[string]{Value: row.Name, Weight: row.Weight})
	}
	for _, row := range mustLoad[weightedOutcomeRow]("run_schemes.csv") {
		runSchemes = append(runSchemes, rng.Choice[string]{Value: row.Name, Weight: row.Weight})
	}
	for _, row := range mustLoad[weightedOutcomeRow]("motion_types.csv") {
		motionTypes = append(motionTypes, rng.Choice[string]{Value: row.Name, Weight: row.Weight})
	}
}

// RunOutcome returns the weighted outcome table for a run play in the
// given context ("base", "goal_line", "short_yardage").
func RunOutcome(context string) []rng.Choice[string] {
	if rows, ok := runOutcomes[context]; ok {
		return rows
	}
	return runOutcomes["base"]
}

// PassOutcome returns the weighted outcome table for a pass play in the
// given context ("base", "screen", "play_action", "goal_line").
func PassOutcome(context string) []rng.Choice[string] {
	if rows, ok := passOutcomes[context]; ok {
		return rows
	}
	return passOutcomes["base"]
}

// Yardage returns the yardage profile for a play type.
func Yardage(playType string) YardageProfile {
	return yardageProfiles[playType]
}

// KickoffOutcome returns the kickoff result table.
func KickoffOutcome() []rng.Choice[string] { return kickoffOutcomes }

// PuntOutcome returns the punt result table.
func PuntOutcome() []rng.Choice[string] { return puntOutcomes }

// FieldGoalBandFor returns the success-weighting band covering distance.
func FieldGoalBandFor(distance int) FieldGoalBand {
	for _, b := range fieldGoalBands {
		if distance >= b.MinDistance && distance <= b.MaxDistance {
			return b
		}
	}
	return fieldGoalBands[len(fieldGoalBands)-1]
}

// PreSnapPenalty samples one pre-snap penalty description/yards pair.
func PreSnapPenalty(s *rng.Stream) (description string, yards int) {
	row := rng.NextWeighted(s, preSnapPenalties)
	return row.Description, row.Yards
}

// PostPlayPenalty samples one post-play penalty description/yards pair.
func PostPlayPenalty(s *rng.Stream) (description string, yards int) {
	row := rng.NextWeighted(s, postPlayPenalties)
	return row.Description, row.Yards
}

// Formation samples a formation for a play family ("run" or "pass").
func Formation(s *rng.Stream, playFamily string) string {
	rows, ok := formations[playFamily]
	if !ok {
		rows = formations["pass"]
	}
	return rng.NextWeighted(s, rows)
}

// RouteConcept samples a route concept for a passing play.
func RouteConcept(s *rng.Stream) string { return rng.NextWeighted(s, routes) }

// ProtectionScheme samples a pass-protection scheme.
func ProtectionScheme(s *rng.Stream) string { return rng.NextWeighted(s, protectionSchemes) }

// RunScheme samples a run-blocking scheme.
func RunScheme(s *rng.Stream) string { return rng.NextWeighted(s, runSchemes) }

// MotionType samples a pre-snap motion type.
func MotionType(s *rng.Stream) string { return rng.NextWeighted(s, motionTypes) }
