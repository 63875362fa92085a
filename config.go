package ossim

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/service/driver"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the simulator configuration.
// The zero-value is useful: nested fields inherit their package defaults.
type Config struct {
	// Quantum applies to scenarios that do not set one
	Quantum  int            `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Policy   *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	Deadlock DeadlockConfig `json:"deadlock" yaml:"deadlock"`
	Driver   *driver.Config `json:"driver,omitempty" yaml:"driver,omitempty"`
}

// DeadlockConfig controls the deadlock monitor
type DeadlockConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DefaultConfig returns a Config populated with package defaults. Callers may
// modify the returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Policy:   policy.DefaultConfig(),
		Deadlock: DeadlockConfig{Enabled: true},
		Driver:   driver.DefaultConfig(),
	}
}

// Init fills unset nested sections with defaults
func (c *Config) Init() {
	if c.Policy == nil {
		c.Policy = policy.DefaultConfig()
	}
	c.Policy.Init()
	if c.Driver == nil {
		c.Driver = driver.DefaultConfig()
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var issues []string
	if c.Quantum < 0 {
		issues = append(issues, fmt.Sprintf("quantum must be >= 0, got %d", c.Quantum))
	}
	if c.Policy != nil {
		if err := c.Policy.Validate(); err != nil {
			issues = append(issues, err.Error())
		}
	}
	if c.Driver != nil {
		if err := c.Driver.Validate(); err != nil {
			issues = append(issues, err.Error())
		}
	}
	if len(issues) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(issues, "; "))
	}
	return nil
}

// LoadConfig reads a YAML or JSON config from URL. Sections missing from the
// document keep their defaults.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if strings.ToLower(path.Ext(URL)) == ".json" {
		err = json.Unmarshal(data, ret)
	} else {
		err = yaml.Unmarshal(data, ret)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	ret.Init()
	return ret, ret.Validate()
}
