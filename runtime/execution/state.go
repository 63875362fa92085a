package execution

import (
	"fmt"

	"github.com/viant/ossim/internal/clock"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/runtime/resource"
)

// SimulationState is the whole mutable state of a run. It is owned by the
// driver and passed by reference to the dispatcher and the deadlock monitor.
type SimulationState struct {
	RunID             string
	Name              string
	Quantum           int
	Clock             *clock.Logical
	Table             *Table
	Ready             *ReadyQueue
	Registry          *resource.Registry
	ContextSwitches   int
	DeadlocksResolved int
	IdleTicks         int
	Timeline          []*model.DispatchEvent
	Resolutions       []*model.Resolution
}

// Snapshot is a read-only copy of the state used for diagnostics
type Snapshot struct {
	Clock      int                 `json:"clock"`
	Ready      []int               `json:"ready"`
	Unfinished int                 `json:"unfinished"`
	Processes  []*Process          `json:"processes"`
	Resources  []resource.Resource `json:"resources"`
	Edges      []*model.Edge       `json:"edges,omitempty"`
}

// String returns a compact one-line description
func (s *Snapshot) String() string {
	return fmt.Sprintf("clock=%d ready=%v unfinished=%d edges=%v", s.Clock, s.Ready, s.Unfinished, s.Edges)
}

// NewSimulationState validates input and builds the initial state at clock 0.
// Input is not modified.
func NewSimulationState(runID string, input *model.Input) (*SimulationState, error) {
	if input == nil {
		return nil, model.NewConfigurationError(fmt.Errorf("input was nil"))
	}
	if issues := input.Validate(); len(issues) > 0 {
		return nil, model.NewConfigurationError(issues...)
	}
	quantum := input.Quantum
	if quantum == 0 {
		quantum = model.DefaultQuantum
	}
	registry := resource.New()
	for _, spec := range input.Resources {
		if err := registry.Register(spec.RID, spec.Total); err != nil {
			return nil, err
		}
	}
	table, err := NewTable(input.SortedProcesses())
	if err != nil {
		return nil, err
	}
	for _, process := range table.Processes() {
		if err := registry.Request(process.PID, process.Requested); err != nil {
			return nil, err
		}
	}
	return &SimulationState{
		RunID:    runID,
		Name:     input.Name,
		Quantum:  quantum,
		Clock:    clock.NewLogical(),
		Table:    table,
		Ready:    NewReadyQueue(),
		Registry: registry,
	}, nil
}

// ReadySet returns the ready processes in queue order
func (s *SimulationState) ReadySet() []*Process {
	pids := s.Ready.PIDs()
	ret := make([]*Process, 0, len(pids))
	for _, pid := range pids {
		if process := s.Table.Lookup(pid); process != nil {
			ret = append(ret, process)
		}
	}
	return ret
}

// RecordDispatch appends a dispatch event. A slice that directly continues the
// previous event of the same pid extends it and does not count as a context
// switch. It returns the event holding the slice and whether it was a switch.
func (s *SimulationState) RecordDispatch(pid, start, duration int, policy string) (*model.DispatchEvent, bool) {
	if count := len(s.Timeline); count > 0 {
		last := s.Timeline[count-1]
		if last.PID == pid && last.End() == start {
			last.Duration += duration
			return last, false
		}
	}
	event := &model.DispatchEvent{PID: pid, Start: start, Duration: duration, Policy: policy}
	s.Timeline = append(s.Timeline, event)
	s.ContextSwitches++
	return event, true
}

// Terminate finishes process at the current clock, takes it out of the ready
// queue and releases its resources. It returns the released resource ids.
func (s *SimulationState) Terminate(process *Process, killed bool) []int {
	if !process.Terminate(s.Clock.Now(), killed) {
		return nil
	}
	s.Ready.Remove(process.PID)
	return s.Registry.Release(process.PID)
}

// Snapshot returns a copy of the current state
func (s *SimulationState) Snapshot() *Snapshot {
	processes := make([]*Process, 0, s.Table.Len())
	for _, process := range s.Table.Processes() {
		processes = append(processes, process.Clone())
	}
	return &Snapshot{
		Clock:      s.Clock.Now(),
		Ready:      s.Ready.PIDs(),
		Unfinished: s.Table.Unfinished(),
		Processes:  processes,
		Resources:  s.Registry.Resources(),
		Edges:      s.Registry.Edges(),
	}
}

// Report builds the run report from the current state
func (s *SimulationState) Report() *model.Report {
	timeline := make([]*model.DispatchEvent, 0, len(s.Timeline))
	for _, event := range s.Timeline {
		clone := *event
		timeline = append(timeline, &clone)
	}
	return &model.Report{
		RunID:             s.RunID,
		Name:              s.Name,
		Quantum:           s.Quantum,
		Clock:             s.Clock.Now(),
		IdleTicks:         s.IdleTicks,
		ContextSwitches:   s.ContextSwitches,
		DeadlocksResolved: s.DeadlocksResolved,
		Timeline:          timeline,
		Rows:              s.Table.Rows(),
		Resolutions:       append([]*model.Resolution(nil), s.Resolutions...),
		Edges:             s.Registry.Edges(),
		CreatedAt:         clock.Now(),
	}
}
