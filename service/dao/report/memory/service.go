package memory

import (
	"context"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/service/dao"
	"github.com/viant/ossim/service/dao/criteria"
	"github.com/viant/ossim/service/dao/store"
)

// Service keeps reports of the current process lifetime by run id.
type Service struct {
	*store.MemoryStore[string, model.Report]
}

var _ dao.Service[string, model.Report] = (*Service)(nil)

// List returns reports matching Name and Status parameters, oldest first.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Report, error) {
	reports, err := s.MemoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Report, 0, len(reports))
	for _, report := range reports {
		if !criteria.Match(dao.ParamName, report.Name, parameters) {
			continue
		}
		if !criteria.Match(dao.ParamStatus, report.Status(), parameters) {
			continue
		}
		out = append(out, report)
	}
	return out, nil
}

// New creates a report store
func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, model.Report](func(r *model.Report) string { return r.RunID }),
	}
}
