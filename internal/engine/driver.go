// Package engine owns the simulation driver and the game state machine:
// the only component permitted to mutate a GameState. It consumes the
// resolver's PlayResult values and the rng stream to advance the clock,
// downs, possession, and score to a terminal state, and assembles the
// complete SimulatedGame record.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/resolver"
	"github.com/gridiron-sim/core/internal/rng"
	"github.com/gridiron-sim/core/internal/weather"
)

// MaxPlays hard-caps total plays per game. Every play advances the clock
// or the down, so this is a backstop, not an expected termination path.
const MaxPlays = 450

// snapshotState returns an independent copy of state: events freeze a
// GameState at a point in time, so the map and pointer fields the struct
// copy would otherwise alias must be cloned too.
func snapshotState(state *models.GameState) models.GameState {
	clone := *state

	clone.Clock.TwoMinuteWarningFired = make(map[models.Quarter]bool, len(state.Clock.TwoMinuteWarningFired))
	for k, v := range state.Clock.TwoMinuteWarningFired {
		clone.Clock.TwoMinuteWarningFired[k] = v
	}

	if state.Overtime != nil {
		ot := *state.Overtime
		clone.Overtime = &ot
	}

	return clone
}

// ValidationError reports a rejected GameConfig; validation failure never
// produces partial output.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "engine: invalid game config: " + e.Reason }

const minRosterSize = 22

// validateConfig enforces the minimum active-roster size constraint.
func validateConfig(config models.GameConfig) error {
	if len(config.HomeRoster.Active()) < minRosterSize {
		return &ValidationError{Reason: fmt.Sprintf("home roster has %d active players, need >= %d", len(config.HomeRoster.Active()), minRosterSize)}
	}
	if len(config.AwayRoster.Active()) < minRosterSize {
		return &ValidationError{Reason: fmt.Sprintf("away roster has %d active players, need >= %d", len(config.AwayRoster.Active()), minRosterSize)}
	}
	if len(config.ServerSeed) < rng.MinServerSeedLen {
		return &ValidationError{Reason: fmt.Sprintf("server_seed must be >= %d characters", rng.MinServerSeedLen)}
	}
	if config.ClientSeed == "" {
		return &ValidationError{Reason: "client_seed must be non-empty"}
	}
	return nil
}

// driver holds the per-game mutable bookkeeping the simulation loop needs
// beyond GameState itself: the event log, drive log, box score, and the
// play counter against MaxPlays.
type driver struct {
	state  *models.GameState
	stream *rng.Stream
	config models.GameConfig

	events []models.GameEvent
	drives []models.Drive

	currentDrive *models.Drive
	box          *models.BoxScore
	totalPlays   int

	openingKickoffReceiver models.Side
	shouldCancel           func() bool
}

// Simulate runs simulate_game end to end. shouldCancel may be nil, in
// which case cancellation is never requested.
func Simulate(config models.GameConfig, shouldCancel func() bool) (*models.SimulatedGame, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	if shouldCancel == nil {
		shouldCancel = func() bool { return false }
	}

	stream := rng.New(config.ServerSeed, config.ClientSeed)
	d := &driver{
		state:        newGameState(config),
		stream:       stream,
		config:       config,
		box:          models.NewBoxScore(),
		shouldCancel: shouldCancel,
	}

	d.state.Weather = weather.Sample(stream, config.HomeTeam)

	d.emitPregameEvents()
	d.runCoinToss()
	d.openKickoff()

	status := d.loop()

	return d.finalize(status), nil
}

func newGameState(config models.GameConfig) *models.GameState {
	return &models.GameState{
		Clock: models.Clock{
			Quarter:               models.Quarter1,
			ClockSeconds:          models.RegulationSeconds,
			IsClockRunning:        false,
			TwoMinuteWarningFired: map[models.Quarter]bool{},
		},
		Timeouts: models.Timeouts{Home: 3, Away: 3},
		Kickoff:  true,
		GameType: config.GameType,
	}
}

func (d *driver) emitPregameEvents() {
	before := snapshotState(d.state)
	d.appendEvent(models.PlayResult{Type: models.PlayPregame}, before, "Pregame warmups conclude.")
}

func (d *driver) runCoinToss() {
	before := snapshotState(d.state)
	winner := models.SideHome
	if d.stream.NextBool(0.5) {
		winner = models.SideAway
	}
	d.openingKickoffReceiver = winner.Opposite()
	if d.stream.NextBool(0.1) {
		d.openingKickoffReceiver = winner
	}
	d.appendEvent(models.PlayResult{Type: models.PlayCoinToss}, before, "Coin toss decides the opening kickoff.")
}

func (d *driver) openKickoff() {
	d.kickoff(d.openingKickoffReceiver.Opposite(), d.openingKickoffReceiver)
}

func (d *driver) kickoff(kicker, receiver models.Side) {
	kickingRoster, receivingRoster := d.rosterFor(kicker), d.rosterFor(receiver)
	result := resolver.ResolveKickoff(d.stream, kickingRoster, receivingRoster)

	before := snapshotState(d.state)
	kickoffToReceiver(d.state, receiver, result.YardsGained)
	d.startDrive(receiver)
	d.recordBoxLine(result, receiver)
	d.appendEvent(result, before, fmt.Sprintf("Kickoff returned to the %d.", result.YardsGained))
}

func (d *driver) rosterFor(side models.Side) models.Roster {
	if side == models.SideHome {
		return d.config.HomeRoster
	}
	return d.config.AwayRoster
}

func (d *driver) startDrive(side models.Side) {
	d.currentDrive = &models.Drive{
		PossessionTeam: side,
		StartPosition:  d.state.Possession.BallPosition,
	}
}

// loop is the body of the simulation driver.
func (d *driver) loop() models.GameStatus {
	for d.totalPlays < MaxPlays {
		if d.shouldCancel() {
			return models.GameStatusCanceled
		}

		if d.state.Clock.IsHalftime {
			resumeFromHalftime(d.state)
			d.kickoff(d.openingKickoffReceiver, d.openingKickoffReceiver.Opposite())
			continue
		}

		if d.regulationComplete() {
			if d.state.HomeScore == d.state.AwayScore {
				beginOvertime(d.stream, d.state)
				d.startDrive(d.state.Possession.Team)
				continue
			}
			return models.GameStatusCompleted
		}

		if d.state.Overtime != nil && !d.state.Overtime.IsComplete {
			over, _, _ := checkOvertimeEnd(d.state)
			if over {
				d.state.Overtime.IsComplete = true
				return models.GameStatusCompleted
			}
			if d.state.Clock.ClockSeconds <= 0 && d.state.HomeScore == d.state.AwayScore &&
				d.state.Overtime.BothTeamsPossessed() {
				// Playoff tie with both teams having possessed: a fresh
				// overtime period begins.
				beginOvertime(d.stream, d.state)
				d.startDrive(d.state.Possession.Team)
				continue
			}
		}

		d.playOneDown()

		if d.state.Clock.ClockSeconds <= 0 && d.state.Overtime == nil {
			d.advanceQuarterOrHalftime()
		}
	}
	return models.GameStatusCompleted
}

// regulationComplete reports whether regulation has ended without
// overtime already in progress.
func (d *driver) regulationComplete() bool {
	return d.state.Overtime == nil && d.state.Clock.Quarter == models.Quarter4 && d.state.Clock.ClockSeconds <= 0
}

func (d *driver) advanceQuarterOrHalftime() {
	if d.state.Clock.Quarter == models.Quarter2 {
		closeDrive(d.currentDrive, d.state, models.DriveEndOfHalf)
		d.drives = append(d.drives, *d.currentDrive)
		d.currentDrive = nil
		halftime(d.state)
		return
	}
	if d.state.Clock.Quarter == models.Quarter4 {
		// Leave the clock at 0 so regulationComplete ends regulation.
		return
	}
	endOfQuarter(d.state)
}

func (d *driver) playOneDown() {
	offense, defense := d.state.Possession.Team, d.state.Possession.Team.Opposite()
	offenseRoster, defenseRoster := d.rosterFor(offense), d.rosterFor(defense)

	offCall := decideOffense(d.stream, d.state)
	defCall := decideDefense(d.stream, d.state)

	distance := 0
	if offCall.Type == models.OffFieldGoal {
		distance = fieldGoalDistance(d.state.Possession.BallPosition)
	}

	result := resolver.Resolve(d.stream, d.state, offenseRoster, defenseRoster, offCall, defCall, distance)
	before := snapshotState(d.state)

	result.ElapsedSeconds = elapsedSecondsFor(d.stream, result)
	tickClock(d.state, result.ElapsedSeconds)
	if !result.ClockStopped {
		d.state.Clock.IsClockRunning = true
	} else {
		d.state.Clock.IsClockRunning = false
	}
	maybeCallDefensiveTimeout(d.state, offense)

	if d.currentDrive == nil {
		d.startDrive(offense)
	}

	driveEnded, driveResult := applyPlay(d.state, result)
	d.recordBoxLine(result, offense)
	d.totalPlays++

	d.appendEvent(result, before, narrate(result))

	if driveEnded {
		closeDrive(d.currentDrive, d.state, driveResult)
		d.drives = append(d.drives, *d.currentDrive)
		d.currentDrive = nil
		if d.state.Overtime != nil {
			recordOvertimePossession(d.state, offense, overtimeResultFor(result))
		}
	}

	if result.Scoring != nil {
		d.handlePostScore(result, result.Scoring.Team)
	}
}

func overtimeResultFor(result models.PlayResult) models.OvertimeResult {
	switch {
	case result.Touchdown:
		return models.OTResultTouchdown
	case result.Scoring != nil && result.Scoring.Type == models.ScoreFieldGoal:
		return models.OTResultFieldGoal
	case result.Safety:
		return models.OTResultSafety
	case result.Turnover != nil:
		return models.OTResultTurnover
	default:
		return models.OTResultNone
	}
}

// handlePostScore sends the scoring team's opponent a kickoff, or (on a
// safety) has the scoring team's opponent free-kick to the scoring team,
// unless the scoring play ends the game outright.
func (d *driver) handlePostScore(result models.PlayResult, scoringSide models.Side) {
	if d.regulationComplete() {
		return
	}
	if d.state.Overtime != nil {
		if over, _, _ := checkOvertimeEnd(d.state); over {
			return
		}
	}

	if result.Safety {
		d.kickoff(scoringSide.Opposite(), scoringSide)
		return
	}

	if result.Scoring.Type == models.ScoreFieldGoal {
		d.kickoff(scoringSide, scoringSide.Opposite())
		return
	}

	d.state.PATAttempt = true
	patOffense, patDefense := d.rosterFor(scoringSide), d.rosterFor(scoringSide.Opposite())
	offCall := decideOffense(d.stream, d.state)
	defCall := decideDefense(d.stream, d.state)
	patResult := resolver.Resolve(d.stream, d.state, patOffense, patDefense, offCall, defCall, 20)
	before := snapshotState(d.state)
	if patResult.Scoring != nil {
		patResult.Scoring.Team = scoringSide
		d.state.AddScore(scoringSide, patResult.Scoring.Points)
	}
	d.state.PATAttempt = false
	d.appendEvent(patResult, before, narratePAT(patResult))

	d.kickoff(scoringSide, scoringSide.Opposite())
}

func closeDrive(drive *models.Drive, state *models.GameState, result models.DriveResult) {
	if drive == nil {
		return
	}
	drive.EndPosition = state.Possession.BallPosition
	drive.Result = result
}

func (d *driver) appendEvent(result models.PlayResult, before models.GameState, narrative string) {
	event := models.GameEvent{
		EventNumber:       len(d.events) + 1,
		StateBefore:       before,
		PlayResult:        result,
		StateAfter:        snapshotState(d.state),
		NarrativeSnapshot: narrative,
	}
	d.events = append(d.events, event)
	if d.currentDrive != nil {
		d.currentDrive.Plays = append(d.currentDrive.Plays, event)
	}
}

func narrate(result models.PlayResult) string {
	if result.Penalty != nil && result.Type == "" {
		return fmt.Sprintf("Penalty: %s (%d yards).", result.Penalty.Description, result.Penalty.Yards)
	}
	if result.Touchdown {
		return "Touchdown!"
	}
	if result.Safety {
		return "Safety."
	}
	return fmt.Sprintf("%s for %d yards.", result.Type, result.YardsGained)
}

func narratePAT(result models.PlayResult) string {
	if result.Scoring != nil {
		return "The extra-point attempt is good."
	}
	return "The extra-point attempt fails."
}

// finalize computes the box score's MVP and assembles the terminal
// SimulatedGame record.
func (d *driver) finalize(status models.GameStatus) *models.SimulatedGame {
	if d.currentDrive != nil {
		closeDrive(d.currentDrive, d.state, models.DriveEndOfGame)
		d.drives = append(d.drives, *d.currentDrive)
		d.currentDrive = nil
	}

	return &models.SimulatedGame{
		ID:             uuid.New(),
		HomeTeam:       d.config.HomeTeam,
		AwayTeam:       d.config.AwayTeam,
		Events:         d.events,
		Drives:         d.drives,
		FinalScore:     models.FinalScore{Home: d.state.HomeScore, Away: d.state.AwayScore},
		ServerSeed:     d.config.ServerSeed,
		ServerSeedHash: d.stream.ServerSeedHash(),
		ClientSeed:     d.config.ClientSeed,
		Nonce:          d.stream.Nonce(),
		TotalPlays:     d.totalPlays,
		MVPPlayerID:    selectMVP(d.box),
		BoxScore:       d.box,
		Weather:        d.state.Weather,
		Status:         status,
	}
}
