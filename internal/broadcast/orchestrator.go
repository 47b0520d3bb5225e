// Package broadcast runs the always-on loop that drives league progression:
// on a fixed cadence it asks internal/scheduler what should happen next and
// carries that decision out.
package broadcast

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/scheduler"
)

// DefaultPollInterval is how often the orchestrator re-evaluates
// DetermineNextAction when nothing else wakes it sooner.
const DefaultPollInterval = 15 * time.Second

// Controller performs the side effects a broadcast.Action asks for. Each
// method owns its own persistence; the orchestrator only decides which one
// to call and when.
type Controller interface {
	CurrentSeason(ctx context.Context) (*models.Season, error)
	CreateSeason(ctx context.Context) (*models.Season, error)
	StartGame(ctx context.Context, gameID uuid.UUID) error
	AdvanceWeek(ctx context.Context, season *models.Season) error
	StartPlayoffs(ctx context.Context, season *models.Season) error
	AdvancePlayoffs(ctx context.Context, season *models.Season) error
	EndSeason(ctx context.Context, season *models.Season) error
}

// Status is a snapshot of the orchestrator's run history, returned to an
// admin endpoint.
type Status struct {
	Running     bool
	LastPoll    time.Time
	LastAction  scheduler.ActionType
	PollCount   int
	ErrorCount  int
	LastError   string
}

// Orchestrator polls Controller.CurrentSeason and scheduler.DetermineNextAction
// on an interval and dispatches whatever action comes back.
type Orchestrator struct {
	controller Controller
	interval   time.Duration

	mu         sync.RWMutex
	running    bool
	lastPoll   time.Time
	lastAction scheduler.ActionType
	pollCount  int
	errorCount int
	lastErr    error

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds an Orchestrator. interval <= 0 falls back to DefaultPollInterval.
func New(controller Controller, interval time.Duration) *Orchestrator {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Orchestrator{controller: controller, interval: interval}
}

// Start begins the poll loop in a background goroutine. Calling Start while
// already running is a no-op.
func (o *Orchestrator) Start() {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		log.Println("[BROADCAST] orchestrator already running")
		return
	}
	o.ctx, o.cancel = context.WithCancel(context.Background())
	o.done = make(chan struct{})
	o.running = true
	o.mu.Unlock()

	log.Printf("[BROADCAST] starting orchestrator, poll interval %s", o.interval)
	go o.loop()
}

// Stop cancels the poll loop and waits for the in-flight iteration to exit.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if !o.running {
		o.mu.Unlock()
		return
	}
	cancel := o.cancel
	done := o.done
	o.running = false
	o.mu.Unlock()

	log.Println("[BROADCAST] stopping orchestrator")
	cancel()
	<-done
}

func (o *Orchestrator) loop() {
	defer close(o.done)
	o.pollOnce()
	for {
		select {
		case <-o.ctx.Done():
			log.Println("[BROADCAST] orchestrator stopped")
			return
		case <-time.After(o.interval):
			o.pollOnce()
		}
	}
}

func (o *Orchestrator) pollOnce() {
	season, err := o.controller.CurrentSeason(o.ctx)
	if err != nil {
		o.recordError(err)
		return
	}

	action := scheduler.DetermineNextAction(season, time.Now())
	err = o.dispatch(action, season)

	o.mu.Lock()
	o.lastPoll = time.Now()
	o.pollCount++
	o.lastAction = action.Type
	if err != nil {
		o.lastErr = err
		o.errorCount++
	} else {
		o.lastErr = nil
	}
	o.mu.Unlock()

	if err != nil {
		log.Printf("[BROADCAST] action %s failed: %v", action.Type, err)
	}
}

func (o *Orchestrator) recordError(err error) {
	o.mu.Lock()
	o.lastPoll = time.Now()
	o.pollCount++
	o.errorCount++
	o.lastErr = err
	o.mu.Unlock()
	log.Printf("[BROADCAST] failed to load current season: %v", err)
}

func (o *Orchestrator) dispatch(action scheduler.Action, season *models.Season) error {
	switch action.Type {
	case scheduler.ActionCreateSeason:
		_, err := o.controller.CreateSeason(o.ctx)
		return err
	case scheduler.ActionNoAction:
		return nil
	case scheduler.ActionStartGame:
		if action.GameID == nil {
			return fmt.Errorf("broadcast: start_game action carried no game id")
		}
		return o.controller.StartGame(o.ctx, *action.GameID)
	case scheduler.ActionAdvanceWeek:
		return o.controller.AdvanceWeek(o.ctx, season)
	case scheduler.ActionStartPlayoffs:
		return o.controller.StartPlayoffs(o.ctx, season)
	case scheduler.ActionAdvancePlayoffs:
		return o.controller.AdvancePlayoffs(o.ctx, season)
	case scheduler.ActionEndSeason:
		return o.controller.EndSeason(o.ctx, season)
	default:
		return fmt.Errorf("broadcast: unrecognized action type %q", action.Type)
	}
}

// GetStatus returns a point-in-time snapshot of the orchestrator's run
// history for an admin endpoint.
func (o *Orchestrator) GetStatus() Status {
	o.mu.RLock()
	defer o.mu.RUnlock()

	lastErr := ""
	if o.lastErr != nil {
		lastErr = o.lastErr.Error()
	}
	return Status{
		Running:    o.running,
		LastPoll:   o.lastPoll,
		LastAction: o.lastAction,
		PollCount:  o.pollCount,
		ErrorCount: o.errorCount,
		LastError:  lastErr,
	}
}

// TriggerPoll runs one iteration immediately, outside the regular cadence
// (useful for an admin "force tick" endpoint).
func (o *Orchestrator) TriggerPoll() {
	o.mu.RLock()
	running := o.running
	o.mu.RUnlock()
	if !running {
		log.Println("[BROADCAST] TriggerPoll called while stopped, ignoring")
		return
	}
	go o.pollOnce()
}
