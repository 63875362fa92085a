package dispatcher

import (
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/runtime/execution"
)

// Decision represents a dispatch choice
type Decision struct {
	PID    int
	Policy string
	// Position is the index of the chosen process in the ready set
	Position int
}

// Service selects processes to dispatch
type Service struct {
	config *policy.Config
}

// Config returns the active thresholds
func (s *Service) Config() *policy.Config {
	return s.config
}

// WithPolicy returns a copy of the service using config thresholds.
func (s *Service) WithPolicy(config *policy.Config) *Service {
	if config == nil {
		return s
	}
	return &Service{config: config}
}

// Select returns the process to run next, or false when ready is empty.
// Ties keep the earliest position in the ready set.
func (s *Service) Select(ready []*execution.Process) (*Decision, bool) {
	if len(ready) == 0 {
		return nil, false
	}
	kind := s.config.KindOf(len(ready))
	position := 0
	switch kind {
	case policy.KindSRT:
		position = minIndex(ready, func(p *execution.Process) int { return p.Remaining })
	case policy.KindPriority:
		position = minIndex(ready, func(p *execution.Process) int { return p.Priority })
	}
	return &Decision{PID: ready[position].PID, Policy: kind, Position: position}, true
}

// minIndex returns the first index holding the minimal key.
func minIndex(ready []*execution.Process, key func(p *execution.Process) int) int {
	ret := 0
	best := key(ready[0])
	for i := 1; i < len(ready); i++ {
		if candidate := key(ready[i]); candidate < best {
			best = candidate
			ret = i
		}
	}
	return ret
}

// New creates a dispatcher; nil config means policy.DefaultConfig.
func New(config *policy.Config) *Service {
	if config == nil {
		config = policy.DefaultConfig()
	}
	return &Service{config: config}
}
