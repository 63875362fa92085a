package deadlock

import "github.com/go-logr/logr"

// Option represents a monitor option
type Option func(s *Service)

// WithEnabled turns detection on or off
func WithEnabled(enabled bool) Option {
	return func(s *Service) {
		s.enabled = enabled
	}
}

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
