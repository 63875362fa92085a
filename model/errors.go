package model

import (
	"errors"
	"strings"
)

// ErrConfiguration is matched (errors.Is) by every ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a scenario that cannot be simulated. It is
// raised before the simulation starts, so no partial state exists.
type ConfigurationError struct {
	Issues []error
}

// NewConfigurationError wraps issues into a ConfigurationError.
func NewConfigurationError(issues ...error) *ConfigurationError {
	return &ConfigurationError{Issues: issues}
}

func (e *ConfigurationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrConfiguration.Error()
	}
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Error())
	}
	return ErrConfiguration.Error() + ": " + strings.Join(messages, "; ")
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
