package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/runtime/execution"
)

func readySet(specs ...*model.ProcessSpec) []*execution.Process {
	var ret []*execution.Process
	for _, spec := range specs {
		ret = append(ret, execution.NewProcess(spec))
	}
	return ret
}

func TestService_Select(t *testing.T) {
	testCases := []struct {
		name         string
		ready        []*execution.Process
		expectPID    int
		expectPolicy string
	}{
		{
			name: "size 2 prefers remaining over priority",
			ready: readySet(
				&model.ProcessSpec{PID: 0, Burst: 4, Priority: 1},
				&model.ProcessSpec{PID: 1, Burst: 2, Priority: 9},
			),
			expectPID:    1,
			expectPolicy: policy.KindSRT,
		},
		{
			name: "size 2 tie keeps queue order",
			ready: readySet(
				&model.ProcessSpec{PID: 5, Burst: 3},
				&model.ProcessSpec{PID: 2, Burst: 3},
			),
			expectPID:    5,
			expectPolicy: policy.KindSRT,
		},
		{
			name: "size 4 prefers priority over remaining",
			ready: readySet(
				&model.ProcessSpec{PID: 0, Burst: 1, Priority: 5},
				&model.ProcessSpec{PID: 1, Burst: 9, Priority: 1},
				&model.ProcessSpec{PID: 2, Burst: 1, Priority: 3},
				&model.ProcessSpec{PID: 3, Burst: 1, Priority: 4},
			),
			expectPID:    1,
			expectPolicy: policy.KindPriority,
		},
		{
			name: "size 3 priority tie keeps queue order",
			ready: readySet(
				&model.ProcessSpec{PID: 4, Burst: 1, Priority: 2},
				&model.ProcessSpec{PID: 1, Burst: 1, Priority: 1},
				&model.ProcessSpec{PID: 0, Burst: 1, Priority: 1},
			),
			expectPID:    1,
			expectPolicy: policy.KindPriority,
		},
		{
			name: "size 6 takes head of queue",
			ready: readySet(
				&model.ProcessSpec{PID: 9, Burst: 9, Priority: 9},
				&model.ProcessSpec{PID: 1, Burst: 1, Priority: 1},
				&model.ProcessSpec{PID: 2, Burst: 1, Priority: 1},
				&model.ProcessSpec{PID: 3, Burst: 1, Priority: 1},
				&model.ProcessSpec{PID: 4, Burst: 1, Priority: 1},
				&model.ProcessSpec{PID: 5, Burst: 1, Priority: 1},
			),
			expectPID:    9,
			expectPolicy: policy.KindRR,
		},
	}
	srv := New(nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := make([]execution.Process, 0, len(tc.ready))
			for _, p := range tc.ready {
				before = append(before, *p.Clone())
			}
			decision, ok := srv.Select(tc.ready)
			assert.True(t, ok)
			assert.Equal(t, tc.expectPID, decision.PID)
			assert.Equal(t, tc.expectPolicy, decision.Policy)
			assert.Equal(t, tc.expectPID, tc.ready[decision.Position].PID)

			again, _ := srv.Select(tc.ready)
			assert.Equal(t, decision, again)
			for i, p := range tc.ready {
				assert.Equal(t, before[i], *p)
			}
		})
	}
}

func TestService_SelectEmpty(t *testing.T) {
	decision, ok := New(nil).Select(nil)
	assert.False(t, ok)
	assert.Nil(t, decision)
}

func TestService_WithPolicy(t *testing.T) {
	srv := New(nil)
	custom := srv.WithPolicy(&policy.Config{ShortestRemainingMax: 1, PriorityMax: 1})
	ready := readySet(
		&model.ProcessSpec{PID: 0, Burst: 4, Priority: 1},
		&model.ProcessSpec{PID: 1, Burst: 2, Priority: 0},
	)
	decision, _ := custom.Select(ready)
	assert.Equal(t, policy.KindRR, decision.Policy)
	assert.Equal(t, 0, decision.PID)
	assert.Equal(t, policy.DefaultShortestRemainingMax, srv.Config().ShortestRemainingMax)
	assert.Same(t, srv, srv.WithPolicy(nil))
}
