package driver

import (
	"context"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/runtime/execution"
	"github.com/viant/ossim/service/deadlock"
	"github.com/viant/ossim/service/dispatcher"
	"github.com/viant/ossim/service/event"
	"github.com/viant/ossim/tracing"
)

// Service runs simulations
type Service struct {
	config     *Config
	dispatcher *dispatcher.Service
	monitor    *deadlock.Service
	events     *event.Service
	logger     logr.Logger
	observe    func(state *execution.SimulationState)
}

// Run simulates input to completion. A configuration problem is returned
// before anything runs, with a nil report. A stalled or interrupted run
// returns the partial report together with the error.
func (s *Service) Run(ctx context.Context, runID string, input *model.Input) (*model.Report, error) {
	state, err := execution.NewSimulationState(runID, input)
	if err != nil {
		return nil, err
	}
	ctx, span := tracing.StartSpan(ctx, "simulation.run", tracing.KindInternal)
	span.WithAttributes(map[string]string{"runId": runID, "scenario": state.Name, "quantum": strconv.Itoa(state.Quantum)})
	span.WithInt("processes", state.Table.Len())

	r := &run{
		ctx:        ctx,
		service:    s,
		state:      state,
		dispatcher: s.dispatcher.WithPolicy(policy.FromContext(ctx)),
		span:       span,
		limit:      state.Table.MaxArrival() + s.config.StallSlack,
	}
	s.logger.Info("simulation started", "runId", runID, "scenario", state.Name,
		"processes", state.Table.Len(), "quantum", state.Quantum)
	err = r.loop()

	report := state.Report()
	if err != nil {
		report.Error = err.Error()
		s.logger.Error(err, "simulation failed", "runId", runID, "clock", report.Clock)
	} else {
		s.logger.Info("simulation finished", "runId", runID, "clock", report.Clock,
			"contextSwitches", report.ContextSwitches, "deadlocksResolved", report.DeadlocksResolved)
	}
	span.WithInt("clock", report.Clock).WithInt("contextSwitches", report.ContextSwitches)
	tracing.EndSpan(span, err)
	return report, err
}

// New creates a driver with default collaborators
func New(opts ...Option) *Service {
	ret := &Service{
		config: DefaultConfig(),
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.config == nil {
		ret.config = DefaultConfig()
	}
	if ret.dispatcher == nil {
		ret.dispatcher = dispatcher.New(nil)
	}
	if ret.monitor == nil {
		ret.monitor = deadlock.New(deadlock.WithLogger(ret.logger))
	}
	return ret
}
