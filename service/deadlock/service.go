package deadlock

import (
	"context"
	"strings"

	"github.com/go-logr/logr"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/progress"
	"github.com/viant/ossim/runtime/execution"
	"github.com/viant/ossim/tracing"
)

// Service monitors the resource-allocation graph of a simulation
type Service struct {
	enabled bool
	logger  logr.Logger
}

// Enabled returns true when Check inspects the graph
func (s *Service) Enabled() bool {
	return s.enabled
}

// Check detects a circular wait and resolves it by terminating the lowest pid
// process of the cycle. It resolves at most one deadlock and returns nil when
// there is none.
func (s *Service) Check(ctx context.Context, state *execution.SimulationState) *model.Resolution {
	if !s.enabled {
		return nil
	}
	cycle := Detect(state.Registry.Edges())
	if cycle == nil {
		return nil
	}
	victim := s.victim(state, cycle)
	if victim == nil {
		return nil
	}

	ctx, span := tracing.StartSpan(ctx, "deadlock.resolve", tracing.KindInternal)
	span.WithInt("clock", state.Clock.Now()).WithInt("victim", victim.PID)
	span.WithAttributes(map[string]string{"runId": state.RunID, "cycle": formatCycle(cycle)})

	released := state.Terminate(victim, true)
	state.DeadlocksResolved++
	resolution := &model.Resolution{
		Clock:    state.Clock.Now(),
		Victim:   victim.PID,
		Cycle:    cycle.Edges,
		Released: released,
	}
	state.Resolutions = append(state.Resolutions, resolution)
	progress.UpdateCtx(ctx, progress.Delta{Killed: 1, Resolved: 1})
	s.logger.Info("deadlock resolved", "runId", state.RunID, "clock", resolution.Clock,
		"victim", victim.PID, "cycle", formatCycle(cycle), "released", released)
	tracing.EndSpan(span, nil)
	return resolution
}

func (s *Service) victim(state *execution.SimulationState, cycle *Cycle) *execution.Process {
	for _, pid := range cycle.Processes() {
		if process := state.Table.Lookup(pid); process != nil && !process.Finished {
			return process
		}
	}
	return nil
}

func formatCycle(cycle *Cycle) string {
	parts := make([]string, 0, len(cycle.Edges))
	for _, edge := range cycle.Edges {
		parts = append(parts, edge.String())
	}
	return strings.Join(parts, ", ")
}

// New creates a deadlock monitor, enabled by default
func New(opts ...Option) *Service {
	ret := &Service{enabled: true, logger: logr.Discard()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
