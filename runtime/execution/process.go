package execution

import (
	"github.com/viant/ossim/model"
)

// Process state constants
const (
	StateNew        = "new"
	StateWaiting    = "waiting"
	StateReady      = "ready"
	StateRunning    = "running"
	StateTerminated = "terminated"
)

// Process represents a simulated process record
type Process struct {
	PID        int    `json:"pid"`
	Arrival    int    `json:"arrival"`
	Burst      int    `json:"burst"`
	Remaining  int    `json:"remaining"`
	Priority   int    `json:"priority"`
	Waiting    int    `json:"waiting"`
	Turnaround int    `json:"turnaround"`
	FinishTime int    `json:"finishTime"`
	Finished   bool   `json:"finished"`
	Killed     bool   `json:"killed,omitempty"`
	Requested  []int  `json:"requested,omitempty"`
	State      string `json:"state"`
}

// NewProcess creates a process in the New state
func NewProcess(spec *model.ProcessSpec) *Process {
	return &Process{
		PID:       spec.PID,
		Arrival:   spec.Arrival,
		Burst:     spec.Burst,
		Remaining: spec.Burst,
		Priority:  spec.Priority,
		Requested: append([]int(nil), spec.Resources...),
		State:     StateNew,
	}
}

// Arrived returns true when the process is eligible at clock
func (p *Process) Arrived(clock int) bool {
	return p.Arrival <= clock
}

// Run consumes up to quantum units of remaining CPU time and returns the
// amount actually used.
func (p *Process) Run(quantum int) int {
	if p.Finished || quantum <= 0 {
		return 0
	}
	used := quantum
	if p.Remaining < used {
		used = p.Remaining
	}
	p.Remaining -= used
	return used
}

// Terminate finalizes the process at clock. A finished process is left as is.
func (p *Process) Terminate(clock int, killed bool) bool {
	if p.Finished {
		return false
	}
	p.FinishTime = clock
	p.Turnaround = p.FinishTime - p.Arrival
	p.Waiting = p.Turnaround - p.Burst
	p.Finished = true
	p.Killed = killed
	p.State = StateTerminated
	return true
}

// Row returns the performance row of the process
func (p *Process) Row() *model.PerformanceRow {
	return &model.PerformanceRow{
		PID:        p.PID,
		Arrival:    p.Arrival,
		Burst:      p.Burst,
		Waiting:    p.Waiting,
		Turnaround: p.Turnaround,
		FinishTime: p.FinishTime,
		Finished:   p.Finished,
		Killed:     p.Killed,
	}
}

// Clone creates a deep copy of the process
func (p *Process) Clone() *Process {
	ret := *p
	ret.Requested = append([]int(nil), p.Requested...)
	return &ret
}
