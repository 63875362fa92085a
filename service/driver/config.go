package driver

import "fmt"

// DefaultStallSlack is the number of idle ticks tolerated past the last arrival
const DefaultStallSlack = 1

// Config represents driver configuration
type Config struct {
	// StallSlack extends the idle horizon (latest arrival) before a run is
	// declared stalled
	StallSlack int `json:"stallSlack,omitempty" yaml:"stallSlack,omitempty"`
}

// DefaultConfig returns default driver configuration
func DefaultConfig() *Config {
	return &Config{StallSlack: DefaultStallSlack}
}

// Validate checks configuration
func (c *Config) Validate() error {
	if c.StallSlack < 0 {
		return fmt.Errorf("driver: stallSlack must be >= 0, got %d", c.StallSlack)
	}
	return nil
}
