package policy

import (
	"context"
	"fmt"
)

// Scheduling policies recognised by the dispatcher.
const (
	KindSRT      = "srt"      // shortest remaining time
	KindPriority = "priority" // lowest priority value
	KindRR       = "rr"       // round-robin, head of queue
)

// Default thresholds
const (
	DefaultShortestRemainingMax = 2
	DefaultPriorityMax          = 5
)

// Config represents ready-set size thresholds.
//
//   - size <= ShortestRemainingMax selects KindSRT
//   - size <= PriorityMax selects KindPriority
//   - larger sets select KindRR
type Config struct {
	ShortestRemainingMax int `json:"shortestRemainingMax,omitempty" yaml:"shortestRemainingMax,omitempty"`
	PriorityMax          int `json:"priorityMax,omitempty" yaml:"priorityMax,omitempty"`
}

// DefaultConfig returns the standard thresholds (2 and 5).
func DefaultConfig() *Config {
	return &Config{
		ShortestRemainingMax: DefaultShortestRemainingMax,
		PriorityMax:          DefaultPriorityMax,
	}
}

// Init applies defaults to unset thresholds
func (c *Config) Init() {
	if c.ShortestRemainingMax == 0 {
		c.ShortestRemainingMax = DefaultShortestRemainingMax
	}
	if c.PriorityMax == 0 {
		c.PriorityMax = DefaultPriorityMax
	}
}

// Validate checks that thresholds are positive and ordered
func (c *Config) Validate() error {
	if c.ShortestRemainingMax < 1 {
		return fmt.Errorf("policy: shortestRemainingMax must be >= 1, got %d", c.ShortestRemainingMax)
	}
	if c.PriorityMax < c.ShortestRemainingMax {
		return fmt.Errorf("policy: priorityMax (%d) must be >= shortestRemainingMax (%d)", c.PriorityMax, c.ShortestRemainingMax)
	}
	return nil
}

// KindOf returns the policy governing a decision over a ready set of size.
func (c *Config) KindOf(size int) string {
	if c == nil {
		c = DefaultConfig()
	}
	switch {
	case size <= c.ShortestRemainingMax:
		return KindSRT
	case size <= c.PriorityMax:
		return KindPriority
	default:
		return KindRR
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	ret := *c
	return &ret
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy config in ctx.
func WithPolicy(ctx context.Context, c *Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, c)
}

// FromContext extracts policy config or nil.
func FromContext(ctx context.Context) *Config {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Config); ok {
		return v
	}
	return nil
}
