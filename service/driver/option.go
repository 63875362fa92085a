package driver

import (
	"github.com/go-logr/logr"
	"github.com/viant/ossim/service/deadlock"
	"github.com/viant/ossim/service/dispatcher"
	"github.com/viant/ossim/service/event"
)

// Option represents a driver option
type Option func(s *Service)

// WithConfig sets driver configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithDispatcher sets the dispatcher
func WithDispatcher(dispatcher *dispatcher.Service) Option {
	return func(s *Service) {
		s.dispatcher = dispatcher
	}
}

// WithMonitor sets the deadlock monitor
func WithMonitor(monitor *deadlock.Service) Option {
	return func(s *Service) {
		s.monitor = monitor
	}
}

// WithEvents sets the event service every simulation event is published to
func WithEvents(events *event.Service) Option {
	return func(s *Service) {
		s.events = events
	}
}

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
