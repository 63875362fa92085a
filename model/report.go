package model

import (
	"fmt"
	"time"
)

// Edge kinds of the resource-allocation graph
const (
	// EdgeRequest points from a process to a resource it waits for
	EdgeRequest = "request"
	// EdgeAllocation points from a resource to the process holding a unit of it
	EdgeAllocation = "allocation"
)

// Edge represents a single resource-allocation graph edge.
type Edge struct {
	Kind string `json:"kind" yaml:"kind"`
	PID  int    `json:"pid" yaml:"pid"`
	RID  int    `json:"rid" yaml:"rid"`
}

func (e *Edge) String() string {
	if e.Kind == EdgeAllocation {
		return fmt.Sprintf("R%d --> P%d", e.RID, e.PID)
	}
	return fmt.Sprintf("P%d --> R%d", e.PID, e.RID)
}

// DispatchEvent records one contiguous stretch of CPU time given to a process.
type DispatchEvent struct {
	PID      int    `json:"pid" yaml:"pid"`
	Start    int    `json:"start" yaml:"start"`
	Duration int    `json:"duration" yaml:"duration"`
	Policy   string `json:"policy" yaml:"policy"`
}

// End returns the clock value at which the event finished.
func (e *DispatchEvent) End() int {
	return e.Start + e.Duration
}

// PerformanceRow holds per-process statistics.
type PerformanceRow struct {
	PID        int  `json:"pid" yaml:"pid"`
	Arrival    int  `json:"arrival" yaml:"arrival"`
	Burst      int  `json:"burst" yaml:"burst"`
	Waiting    int  `json:"waiting" yaml:"waiting"`
	Turnaround int  `json:"turnaround" yaml:"turnaround"`
	FinishTime int  `json:"finishTime" yaml:"finishTime"`
	Finished   bool `json:"finished" yaml:"finished"`
	// Killed is set when the process was terminated to break a deadlock
	Killed bool `json:"killed,omitempty" yaml:"killed,omitempty"`
}

// Resolution describes one broken deadlock.
type Resolution struct {
	Clock  int `json:"clock" yaml:"clock"`
	Victim int `json:"victim" yaml:"victim"`
	// Cycle lists the graph edges forming the detected cycle
	Cycle []*Edge `json:"cycle" yaml:"cycle"`
	// Released lists the resource ids returned to the registry
	Released []int `json:"released,omitempty" yaml:"released,omitempty"`
}

// Report is the outcome of a simulation run.
type Report struct {
	RunID             string            `json:"runId" yaml:"runId"`
	Name              string            `json:"name,omitempty" yaml:"name,omitempty"`
	Quantum           int               `json:"quantum" yaml:"quantum"`
	Clock             int               `json:"clock" yaml:"clock"`
	IdleTicks         int               `json:"idleTicks" yaml:"idleTicks"`
	ContextSwitches   int               `json:"contextSwitches" yaml:"contextSwitches"`
	DeadlocksResolved int               `json:"deadlocksResolved" yaml:"deadlocksResolved"`
	Timeline          []*DispatchEvent  `json:"timeline" yaml:"timeline"`
	Rows              []*PerformanceRow `json:"rows" yaml:"rows"`
	Resolutions       []*Resolution     `json:"resolutions,omitempty" yaml:"resolutions,omitempty"`
	Edges             []*Edge           `json:"edges,omitempty" yaml:"edges,omitempty"`
	CreatedAt         time.Time         `json:"createdAt" yaml:"createdAt"`
	// Error carries the fatal error message when the run did not complete
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Run statuses
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Status returns StatusFailed when the run ended with a fatal error.
func (r *Report) Status() string {
	if r.Error != "" {
		return StatusFailed
	}
	return StatusCompleted
}

// Row returns the performance row of pid or nil.
func (r *Report) Row(pid int) *PerformanceRow {
	for _, row := range r.Rows {
		if row.PID == pid {
			return row
		}
	}
	return nil
}

// AverageWaiting returns mean waiting time over all rows.
func (r *Report) AverageWaiting() float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	total := 0
	for _, row := range r.Rows {
		total += row.Waiting
	}
	return float64(total) / float64(len(r.Rows))
}

// AverageTurnaround returns mean turnaround time over all rows.
func (r *Report) AverageTurnaround() float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	total := 0
	for _, row := range r.Rows {
		total += row.Turnaround
	}
	return float64(total) / float64(len(r.Rows))
}
