package ossim

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/ossim/internal/idgen"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/progress"
	"github.com/viant/ossim/service/dao"
	rmemory "github.com/viant/ossim/service/dao/report/memory"
	"github.com/viant/ossim/service/dao/scenario"
	"github.com/viant/ossim/service/deadlock"
	"github.com/viant/ossim/service/dispatcher"
	"github.com/viant/ossim/service/driver"
	"github.com/viant/ossim/service/event"
	"github.com/viant/ossim/service/report"
)

// Service is the simulator facade: it loads scenarios, runs them and keeps
// their reports for the lifetime of the process.
type Service struct {
	config            *Config
	logger            logr.Logger
	driver            *driver.Service
	scenarios         *scenario.Service
	reports           dao.Service[string, model.Report]
	eventService      *event.Service
	renderer          *report.Service
	scenarioBaseURL   string
	scenarioFsOptions []storage.Option
	onProgress        func(progress.Counters)
}

func (s *Service) ensureConfig() *Config {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	return s.config
}

func (s *Service) init(options []Option) {
	s.logger = logr.Discard()
	for _, option := range options {
		option(s)
	}
	s.ensureConfig().Init()
	if s.reports == nil {
		s.reports = rmemory.New()
	}
	if s.scenarios == nil {
		s.scenarios = scenario.New(afs.New(), s.scenarioBaseURL, s.scenarioFsOptions...)
	}
	s.renderer = report.New(report.WithTimes(true))
	s.driver = driver.New(
		driver.WithConfig(s.config.Driver),
		driver.WithDispatcher(dispatcher.New(s.config.Policy)),
		driver.WithMonitor(deadlock.New(
			deadlock.WithEnabled(s.config.Deadlock.Enabled),
			deadlock.WithLogger(s.logger.WithName("deadlock")),
		)),
		driver.WithEvents(s.eventService),
		driver.WithLogger(s.logger.WithName("driver")),
	)
}

// Config returns the active configuration
func (s *Service) Config() *Config {
	return s.config
}

// Events returns the event service, nil unless configured
func (s *Service) Events() *event.Service {
	return s.eventService
}

// Simulate runs input and stores the report under a new run id. Input is not
// modified. A stalled run still stores and returns its partial report.
func (s *Service) Simulate(ctx context.Context, input *model.Input) (*model.Report, error) {
	if input == nil {
		return nil, model.NewConfigurationError(fmt.Errorf("input was nil"))
	}
	aInput := *input
	if aInput.Quantum == 0 && s.config.Quantum > 0 {
		aInput.Quantum = s.config.Quantum
	}
	runID := idgen.New()
	ctx, _ = progress.WithNewTracker(ctx, runID, aInput.Name, s.onProgress)
	ret, err := s.driver.Run(ctx, runID, &aInput)
	if ret != nil {
		if saveErr := s.reports.Save(ctx, ret); saveErr != nil {
			s.logger.Error(saveErr, "failed to save report", "runId", runID)
		}
	}
	return ret, err
}

// SimulateURL loads a scenario from URL and simulates it.
func (s *Service) SimulateURL(ctx context.Context, URL string) (*model.Report, error) {
	input, err := s.scenarios.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	return s.Simulate(ctx, input)
}

// LoadScenario loads a scenario from URL without running it.
func (s *Service) LoadScenario(ctx context.Context, URL string) (*model.Input, error) {
	return s.scenarios.Load(ctx, URL)
}

// Report returns a stored report
func (s *Service) Report(ctx context.Context, runID string) (*model.Report, error) {
	return s.reports.Load(ctx, runID)
}

// Reports lists stored reports, see dao.ParamName and dao.ParamStatus.
func (s *Service) Reports(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Report, error) {
	return s.reports.List(ctx, parameters...)
}

// Render writes a text rendition of report to w.
func (s *Service) Render(w io.Writer, aReport *model.Report) error {
	return s.renderer.Render(w, aReport)
}

// New creates a simulator service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

// NewFromConfig validates config and creates a service with it.
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(append([]Option{WithConfig(config)}, options...)...), nil
}
