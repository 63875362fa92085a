package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/service/dao"
)

func TestService(t *testing.T) {
	srv := New()
	ctx := context.Background()

	require.NoError(t, srv.Save(ctx, &model.Report{RunID: "r1", Name: "a"}))
	require.NoError(t, srv.Save(ctx, &model.Report{RunID: "r2", Name: "b", Error: "stalled"}))
	require.NoError(t, srv.Save(ctx, &model.Report{RunID: "r3", Name: "a"}))
	assert.True(t, errors.Is(srv.Save(ctx, &model.Report{}), dao.ErrInvalidID))
	assert.True(t, errors.Is(srv.Save(ctx, nil), dao.ErrNilEntity))

	report, err := srv.Load(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, "b", report.Name)

	_, err = srv.Load(ctx, "missing")
	assert.True(t, errors.Is(err, dao.ErrNotFound))

	testCases := []struct {
		name       string
		parameters []*dao.Parameter
		expect     []string
	}{
		{name: "all", expect: []string{"r1", "r2", "r3"}},
		{name: "by name", parameters: []*dao.Parameter{dao.NewParameter(dao.ParamName, "a")}, expect: []string{"r1", "r3"}},
		{name: "by status", parameters: []*dao.Parameter{dao.NewParameter(dao.ParamStatus, model.StatusFailed)}, expect: []string{"r2"}},
		{name: "name and status", parameters: []*dao.Parameter{
			dao.NewParameter(dao.ParamName, "a", "b"),
			dao.NewParameter(dao.ParamStatus, model.StatusCompleted),
		}, expect: []string{"r1", "r3"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reports, err := srv.List(ctx, tc.parameters...)
			require.NoError(t, err)
			var ids []string
			for _, r := range reports {
				ids = append(ids, r.RunID)
			}
			assert.Equal(t, tc.expect, ids)
		})
	}

	require.NoError(t, srv.Delete(ctx, "r1"))
	assert.True(t, errors.Is(srv.Delete(ctx, "r1"), dao.ErrNotFound))
	reports, _ := srv.List(ctx)
	assert.Len(t, reports, 2)
}
