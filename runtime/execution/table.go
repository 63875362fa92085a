package execution

import (
	"fmt"
	"sort"

	"github.com/viant/ossim/model"
)

// Table holds process records ordered by pid
type Table struct {
	processes []*Process
	byPID     map[int]*Process
}

// NewTable creates a table from process specs; pids have to be unique.
func NewTable(specs []*model.ProcessSpec) (*Table, error) {
	ret := &Table{byPID: make(map[int]*Process, len(specs))}
	for _, spec := range specs {
		if spec == nil {
			continue
		}
		if _, ok := ret.byPID[spec.PID]; ok {
			return nil, model.NewConfigurationError(fmt.Errorf("duplicate process id P%d", spec.PID))
		}
		process := NewProcess(spec)
		ret.byPID[spec.PID] = process
		ret.processes = append(ret.processes, process)
	}
	sort.SliceStable(ret.processes, func(i, j int) bool {
		return ret.processes[i].PID < ret.processes[j].PID
	})
	return ret, nil
}

// Lookup returns the process with pid
func (t *Table) Lookup(pid int) *Process {
	return t.byPID[pid]
}

// Processes returns all processes in pid order
func (t *Table) Processes() []*Process {
	return t.processes
}

// Len returns the number of processes
func (t *Table) Len() int {
	return len(t.processes)
}

// Unfinished returns the number of processes not yet terminated
func (t *Table) Unfinished() int {
	count := 0
	for _, process := range t.processes {
		if !process.Finished {
			count++
		}
	}
	return count
}

// Done returns true once every process is terminated
func (t *Table) Done() bool {
	return t.Unfinished() == 0
}

// MaxArrival returns the latest arrival time
func (t *Table) MaxArrival() int {
	ret := 0
	for _, process := range t.processes {
		if process.Arrival > ret {
			ret = process.Arrival
		}
	}
	return ret
}

// Rows returns per-process statistics in pid order
func (t *Table) Rows() []*model.PerformanceRow {
	ret := make([]*model.PerformanceRow, 0, len(t.processes))
	for _, process := range t.processes {
		ret = append(ret, process.Row())
	}
	return ret
}
