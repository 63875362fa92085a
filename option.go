package ossim

import (
	"github.com/go-logr/logr"
	"github.com/viant/afs/storage"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/progress"
	"github.com/viant/ossim/service/dao"
	"github.com/viant/ossim/service/event"
	"github.com/viant/ossim/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents a service option
type Option func(s *Service)

// WithConfig sets the configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLogger sets the logger shared by the driver and the deadlock monitor
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEventService publishes every simulation event to service
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.eventService = service
	}
}

// WithReportDAO sets the report store
func WithReportDAO(reports dao.Service[string, model.Report]) Option {
	return func(s *Service) {
		s.reports = reports
	}
}

// WithScenarioBaseURL sets the base URL relative scenario locations resolve against
func WithScenarioBaseURL(URL string) Option {
	return func(s *Service) {
		s.scenarioBaseURL = URL
	}
}

// WithScenarioFsOptions sets scenario file system options
func WithScenarioFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.scenarioFsOptions = options
	}
}

// WithPolicy sets dispatcher thresholds
func WithPolicy(config *policy.Config) Option {
	return func(s *Service) {
		s.ensureConfig().Policy = config
	}
}

// WithDeadlockDetection turns the deadlock monitor on or off
func WithDeadlockDetection(enabled bool) Option {
	return func(s *Service) {
		s.ensureConfig().Deadlock.Enabled = enabled
	}
}

// WithProgressListener sets a callback invoked on every progress counter change
func WithProgressListener(listener func(progress.Counters)) Option {
	return func(s *Service) {
		s.onProgress = listener
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter. If
// outputFile is empty spans are written to stdout.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(serviceName, serviceVersion, outputFile); err != nil {
			s.logger.Error(err, "failed to initialise tracing")
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.logger.Error(err, "failed to initialise tracing")
		}
	}
}
