package resource

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viant/ossim/model"
)

// ErrInsufficientCapacity is returned by Allocate when no unit is available.
// It is an expected condition: the requesting process keeps waiting.
var ErrInsufficientCapacity = errors.New("resource: insufficient capacity")

// ErrUnknownResource is returned when a resource id was never registered.
var ErrUnknownResource = errors.New("resource: unknown resource")

// Resource represents a resource type with fixed capacity.
type Resource struct {
	RID       int `json:"rid"`
	Total     int `json:"total"`
	Available int `json:"available"`
}

// Registry tracks resources and the request/allocation edges.
type Registry struct {
	resources map[int]*Resource
	requested map[int][]int // fixed at admission
	pending   map[int][]int // request edges not yet granted
	held      map[int][]int // allocation edges
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		resources: make(map[int]*Resource),
		requested: make(map[int][]int),
		pending:   make(map[int][]int),
		held:      make(map[int][]int),
	}
}

// Register creates a resource with all units available.
func (r *Registry) Register(rid, total int) error {
	if total < 1 {
		return model.NewConfigurationError(fmt.Errorf("resource R%d capacity must be >= 1, got %d", rid, total))
	}
	if _, ok := r.resources[rid]; ok {
		return model.NewConfigurationError(fmt.Errorf("duplicate resource id R%d", rid))
	}
	r.resources[rid] = &Resource{RID: rid, Total: total, Available: total}
	return nil
}

// Lookup returns a copy of the resource.
func (r *Registry) Lookup(rid int) (Resource, bool) {
	resource, ok := r.resources[rid]
	if !ok {
		return Resource{}, false
	}
	return *resource, true
}

// Resources returns copies of all resources ordered by rid.
func (r *Registry) Resources() []Resource {
	ret := make([]Resource, 0, len(r.resources))
	for _, rid := range sortedKeys(r.resources) {
		ret = append(ret, *r.resources[rid])
	}
	return ret
}

// TotalAvailable returns the sum of available units over all resources.
func (r *Registry) TotalAvailable() int {
	total := 0
	for _, resource := range r.resources {
		total += resource.Available
	}
	return total
}

// Request records the ordered sequence of resources pid wants. Every rid has
// to be registered.
func (r *Registry) Request(pid int, rids []int) error {
	for _, rid := range rids {
		if _, ok := r.resources[rid]; !ok {
			return model.NewConfigurationError(fmt.Errorf("process P%d requests unregistered resource R%d", pid, rid))
		}
	}
	r.requested[pid] = append([]int(nil), rids...)
	if len(rids) > 0 {
		r.pending[pid] = append([]int(nil), rids...)
	}
	return nil
}

// RequestOf returns the fixed, ordered request sequence of pid.
func (r *Registry) RequestOf(pid int) []int {
	return append([]int(nil), r.requested[pid]...)
}

// Pending returns resources pid still waits for, in request order.
func (r *Registry) Pending(pid int) []int {
	return append([]int(nil), r.pending[pid]...)
}

// Held returns resources currently allocated to pid.
func (r *Registry) Held(pid int) []int {
	return append([]int(nil), r.held[pid]...)
}

// Allocate grants one unit of rid to pid and turns the matching request edge
// (if any) into an allocation edge.
func (r *Registry) Allocate(pid, rid int) error {
	resource, ok := r.resources[rid]
	if !ok {
		return fmt.Errorf("failed to allocate R%d to P%d: %w", rid, pid, ErrUnknownResource)
	}
	if resource.Available == 0 {
		return fmt.Errorf("failed to allocate R%d to P%d: %w", rid, pid, ErrInsufficientCapacity)
	}
	resource.Available--
	r.held[pid] = append(r.held[pid], rid)
	pending := r.pending[pid]
	for i, candidate := range pending {
		if candidate == rid {
			pending = append(pending[:i:i], pending[i+1:]...)
			break
		}
	}
	if len(pending) == 0 {
		delete(r.pending, pid)
	} else {
		r.pending[pid] = pending
	}
	return nil
}

// Release returns every unit held by pid and withdraws its outstanding
// requests. It returns the released resource ids in allocation order.
func (r *Registry) Release(pid int) []int {
	released := r.held[pid]
	for _, rid := range released {
		if resource, ok := r.resources[rid]; ok && resource.Available < resource.Total {
			resource.Available++
		}
	}
	delete(r.held, pid)
	delete(r.pending, pid)
	return released
}

// Edges returns the current resource-allocation graph: request edges first,
// then allocation edges, each group ordered by pid.
func (r *Registry) Edges() []*model.Edge {
	var ret []*model.Edge
	for _, pid := range sortedKeys(r.pending) {
		for _, rid := range r.pending[pid] {
			ret = append(ret, &model.Edge{Kind: model.EdgeRequest, PID: pid, RID: rid})
		}
	}
	for _, pid := range sortedKeys(r.held) {
		for _, rid := range r.held[pid] {
			ret = append(ret, &model.Edge{Kind: model.EdgeAllocation, PID: pid, RID: rid})
		}
	}
	return ret
}

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
