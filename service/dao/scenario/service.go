package scenario

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/ossim/model"
	"gopkg.in/yaml.v3"
)

// Service loads scenarios (model.Input) from any afs supported location.
type Service struct {
	fs        afs.Service
	baseURL   string
	options   []storage.Option
	expandEnv bool
}

// Load downloads and decodes a scenario. Relative URLs are resolved against
// the base URL. The default quantum is applied.
func (s *Service) Load(ctx context.Context, URL string) (*model.Input, error) {
	URL = s.resolve(URL)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download scenario %v: %w", URL, err)
	}
	input, err := s.Decode(URL, data)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		input.Name = nameFromURL(URL)
	}
	return input, nil
}

// Decode decodes a scenario document. yaml.v3 reads JSON documents as well,
// so URL only names the source in errors. With env expansion on, a reference
// to an unset variable fails with model.ConfigurationError.
func (s *Service) Decode(URL string, data []byte) (*model.Input, error) {
	document := &yaml.Node{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("failed to decode scenario %v: %w", URL, err)
	}
	if s.expandEnv {
		if issues := expandEnv(document); len(issues) > 0 {
			return nil, model.NewConfigurationError(issues...)
		}
	}
	input := &model.Input{}
	if document.Kind != 0 {
		if err := document.Decode(input); err != nil {
			return nil, fmt.Errorf("failed to decode scenario %v: %w", URL, err)
		}
	}
	input.Init()
	return input, nil
}

func (s *Service) resolve(URL string) string {
	if s.baseURL == "" || !url.IsRelative(URL) {
		return URL
	}
	return url.Join(s.baseURL, URL)
}

func nameFromURL(URL string) string {
	name := path.Base(URL)
	return strings.TrimSuffix(name, path.Ext(name))
}

// New creates a scenario service
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL, options: options, expandEnv: true}
}

// WithoutEnvExpansion disables ${env.KEY} substitution.
func (s *Service) WithoutEnvExpansion() *Service {
	s.expandEnv = false
	return s
}
