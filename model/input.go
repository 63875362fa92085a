package model

import (
	"fmt"
	"sort"
)

// DefaultQuantum is the time slice used when a scenario does not set one.
const DefaultQuantum = 3

// ProcessSpec describes a single process submitted to the simulator.
type ProcessSpec struct {
	// PID uniquely identifies the process within a scenario
	PID int `json:"pid" yaml:"pid"`
	// Arrival is the clock value at which the process becomes eligible
	Arrival int `json:"arrival" yaml:"arrival"`
	// Burst is the total CPU time required
	Burst int `json:"burst" yaml:"burst"`
	// Priority - lower value means higher priority
	Priority int `json:"priority" yaml:"priority"`
	// Resources lists resource ids the process requests, in acquisition order
	Resources []int `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// ResourceSpec describes a resource type and its capacity.
type ResourceSpec struct {
	RID   int `json:"rid" yaml:"rid"`
	Total int `json:"total" yaml:"total"`
}

// Input represents a complete scenario.
type Input struct {
	Name      string          `json:"name,omitempty" yaml:"name,omitempty"`
	Quantum   int             `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Processes []*ProcessSpec  `json:"processes" yaml:"processes"`
	Resources []*ResourceSpec `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Init applies defaults to unset fields.
func (i *Input) Init() {
	if i.Quantum == 0 {
		i.Quantum = DefaultQuantum
	}
}

// Validate performs a structural validation of the scenario. The returned
// slice is empty when the scenario is sound; otherwise each element describes
// one issue. Unset quantum is not an issue since Init defaults it.
func (i *Input) Validate() []error {
	var issues []error
	if i.Quantum < 0 {
		issues = append(issues, fmt.Errorf("quantum must be > 0, got %d", i.Quantum))
	}

	resources := map[int]bool{}
	for idx, resource := range i.Resources {
		if resource == nil {
			issues = append(issues, fmt.Errorf("resource #%d is nil", idx))
			continue
		}
		if resources[resource.RID] {
			issues = append(issues, fmt.Errorf("duplicate resource id R%d", resource.RID))
		}
		resources[resource.RID] = true
		if resource.Total < 1 {
			issues = append(issues, fmt.Errorf("resource R%d capacity must be >= 1, got %d", resource.RID, resource.Total))
		}
	}

	pids := map[int]bool{}
	for idx, process := range i.Processes {
		if process == nil {
			issues = append(issues, fmt.Errorf("process #%d is nil", idx))
			continue
		}
		if pids[process.PID] {
			issues = append(issues, fmt.Errorf("duplicate process id P%d", process.PID))
		}
		pids[process.PID] = true
		if process.Arrival < 0 {
			issues = append(issues, fmt.Errorf("process P%d arrival must be >= 0, got %d", process.PID, process.Arrival))
		}
		if process.Burst <= 0 {
			issues = append(issues, fmt.Errorf("process P%d burst must be > 0, got %d", process.PID, process.Burst))
		}
		for _, rid := range process.Resources {
			if !resources[rid] {
				issues = append(issues, fmt.Errorf("process P%d requests unregistered resource R%d", process.PID, rid))
			}
		}
	}
	return issues
}

// SortedProcesses returns process specs ordered by pid.
func (i *Input) SortedProcesses() []*ProcessSpec {
	ret := make([]*ProcessSpec, 0, len(i.Processes))
	for _, process := range i.Processes {
		if process != nil {
			ret = append(ret, process)
		}
	}
	sort.SliceStable(ret, func(a, b int) bool { return ret[a].PID < ret[b].PID })
	return ret
}
