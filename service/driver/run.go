package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/progress"
	"github.com/viant/ossim/runtime/execution"
	"github.com/viant/ossim/runtime/resource"
	"github.com/viant/ossim/service/dispatcher"
	"github.com/viant/ossim/service/event"
	"github.com/viant/ossim/tracing"
)

// Phase represents a driver loop state
type Phase string

// Loop phases
const (
	PhaseAdmitting   Phase = "admitting"
	PhaseDispatching Phase = "dispatching"
	PhaseExecuting   Phase = "executing"
	PhaseMonitoring  Phase = "monitoring"
	PhaseIdle        Phase = "idle"
	PhaseDone        Phase = "done"
)

type run struct {
	ctx        context.Context
	service    *Service
	state      *execution.SimulationState
	dispatcher *dispatcher.Service
	span       *tracing.Span
	phase      Phase
	limit      int
	idle       int
	seq        int
}

func (r *run) enter(phase Phase) {
	r.phase = phase
	r.service.logger.V(2).Info("phase", "runId", r.state.RunID, "clock", r.state.Clock.Now(), "phase", string(phase))
}

func (r *run) loop() error {
	for {
		if err := r.ctx.Err(); err != nil {
			return fmt.Errorf("simulation interrupted at clock %d: %w", r.state.Clock.Now(), err)
		}
		if r.state.Table.Done() {
			r.enter(PhaseDone)
			return nil
		}
		r.enter(PhaseAdmitting)
		r.admit()

		r.enter(PhaseDispatching)
		decision, ok := r.dispatcher.Select(r.state.ReadySet())
		if !ok {
			if err := r.idleTick(); err != nil {
				return err
			}
		} else {
			r.enter(PhaseExecuting)
			r.execute(decision)

			r.enter(PhaseMonitoring)
			r.resolve()
		}
		if r.service.observe != nil {
			r.service.observe(r.state)
		}
	}
}

// admit moves arrived processes to Waiting and grants their requests in
// rounds, one resource per process per round in pid order, until a round
// grants nothing. Fully granted processes join the ready queue.
func (r *run) admit() {
	state := r.state
	now := state.Clock.Now()
	for _, process := range state.Table.Processes() {
		if process.State != execution.StateNew || !process.Arrived(now) {
			continue
		}
		process.State = execution.StateWaiting
		progress.UpdateCtx(r.ctx, progress.Delta{Admitted: 1})
		publish(r, event.TypeAdmitted, process.PID, *process.Row())
	}

	for granted := true; granted; {
		granted = false
		for _, process := range state.Table.Processes() {
			if process.State != execution.StateWaiting {
				continue
			}
			pending := state.Registry.Pending(process.PID)
			if len(pending) == 0 {
				continue
			}
			rid := pending[0]
			if err := state.Registry.Allocate(process.PID, rid); err != nil {
				if !errors.Is(err, resource.ErrInsufficientCapacity) {
					r.service.logger.Error(err, "allocation failed", "runId", state.RunID, "pid", process.PID, "rid", rid)
				}
				continue
			}
			granted = true
			publish(r, event.TypeGranted, process.PID, model.Edge{Kind: model.EdgeAllocation, PID: process.PID, RID: rid})
		}
	}

	for _, process := range state.Table.Processes() {
		if process.State == execution.StateWaiting && len(state.Registry.Pending(process.PID)) == 0 {
			process.State = execution.StateReady
			state.Ready.Push(process.PID)
		}
	}
}

// idleTick gives the monitor a chance to break a deadlock, otherwise advances
// the clock by one unit.
func (r *run) idleTick() error {
	r.enter(PhaseIdle)
	if r.resolve() != nil {
		r.idle = 0
		return nil
	}
	state := r.state
	state.Clock.Tick()
	state.IdleTicks++
	r.idle++
	progress.UpdateCtx(r.ctx, progress.Delta{Idle: 1})
	if r.idle > r.limit {
		snapshot := state.Snapshot()
		publish(r, event.TypeStalled, -1, *snapshot)
		return &StalledError{Clock: state.Clock.Now(), IdleTicks: r.idle, Snapshot: snapshot}
	}
	publish(r, event.TypeIdle, -1, state.Clock.Now())
	return nil
}

func (r *run) execute(decision *dispatcher.Decision) {
	state := r.state
	process := state.Table.Lookup(decision.PID)
	process.State = execution.StateRunning
	start := state.Clock.Now()
	used := process.Run(state.Quantum)
	state.Clock.Advance(used)
	dispatched, switched := state.RecordDispatch(process.PID, start, used, decision.Policy)
	r.idle = 0
	progress.UpdateCtx(r.ctx, progress.Delta{Dispatched: 1})
	r.service.logger.V(1).Info("dispatched", "runId", state.RunID, "clock", start, "pid", process.PID,
		"duration", used, "policy", decision.Policy, "switch", switched)
	// events mirror the timeline: a slice merged into the previous entry is
	// published as an extension carrying the merged entry
	eventType := event.TypeDispatched
	if !switched {
		eventType = event.TypeExtended
	}
	publish(r, eventType, process.PID, *dispatched)

	if process.Remaining == 0 {
		state.Terminate(process, false)
		progress.UpdateCtx(r.ctx, progress.Delta{Completed: 1})
		r.span.AddEvent("terminated", map[string]int{"pid": process.PID, "clock": process.FinishTime})
		publish(r, event.TypeTerminated, process.PID, *process.Row())
		return
	}
	process.State = execution.StateReady
	state.Ready.Remove(process.PID)
	state.Ready.Push(process.PID)
}

func (r *run) resolve() *model.Resolution {
	resolution := r.service.monitor.Check(r.ctx, r.state)
	if resolution == nil {
		return nil
	}
	r.span.AddEvent("deadlock", map[string]int{"victim": resolution.Victim, "clock": resolution.Clock})
	publish(r, event.TypeResolved, resolution.Victim, *resolution)
	return resolution
}

// publish emits a typed event; failures are logged, never fatal.
func publish[T any](r *run, eventType string, pid int, data T) {
	if r.service.events == nil {
		return
	}
	r.seq++
	publisher, err := event.PublisherOf[T](r.service.events)
	if err == nil {
		err = publisher.Publish(r.ctx, event.NewEvent(&event.Context{
			RunID:     r.state.RunID,
			Clock:     r.state.Clock.Now(),
			EventType: eventType,
			PID:       pid,
			Seq:       r.seq,
		}, data))
	}
	if err != nil {
		r.service.logger.Error(err, "failed to publish event", "runId", r.state.RunID, "type", eventType)
	}
}
