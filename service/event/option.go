package event

import (
	"github.com/viant/ossim/service/messaging/memory"
)

type Option func(s *Service)

// WithNewMemoryQueueConfig sets the memory queue configuration factory
func WithNewMemoryQueueConfig(newConfig func(name string) memory.Config) Option {
	return func(s *Service) {
		s.memNewQueueConfig = newConfig
	}
}

// WithErrorHandler sets a callback for listener consume errors
func WithErrorHandler(onError func(error)) Option {
	return func(s *Service) {
		s.onError = onError
	}
}
