package deadlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ossim/model"
)

func request(pid, rid int) *model.Edge {
	return &model.Edge{Kind: model.EdgeRequest, PID: pid, RID: rid}
}

func allocation(rid, pid int) *model.Edge {
	return &model.Edge{Kind: model.EdgeAllocation, PID: pid, RID: rid}
}

func TestDetect(t *testing.T) {
	testCases := []struct {
		name            string
		edges           []*model.Edge
		expectCycle     []*model.Edge
		expectProcesses []int
	}{
		{
			name:  "empty graph",
			edges: nil,
		},
		{
			name:  "contention without cycle",
			edges: []*model.Edge{request(1, 0), allocation(0, 0)},
		},
		{
			name:            "two process cycle",
			edges:           []*model.Edge{request(0, 1), request(1, 0), allocation(0, 0), allocation(1, 1)},
			expectCycle:     []*model.Edge{request(0, 1), allocation(1, 1), request(1, 0), allocation(0, 0)},
			expectProcesses: []int{0, 1},
		},
		{
			name:            "process waiting on itself",
			edges:           []*model.Edge{request(0, 0), allocation(0, 0)},
			expectCycle:     []*model.Edge{request(0, 0), allocation(0, 0)},
			expectProcesses: []int{0},
		},
		{
			name: "cycle reached through a tail",
			edges: []*model.Edge{
				request(0, 0), allocation(0, 1),
				request(1, 2), allocation(2, 3),
				request(3, 1), allocation(1, 2),
				request(2, 3), allocation(3, 3),
			},
			expectCycle: []*model.Edge{
				request(3, 1), allocation(1, 2), request(2, 3), allocation(3, 3),
			},
			expectProcesses: []int{2, 3},
		},
		{
			name:  "chain",
			edges: []*model.Edge{request(0, 0), allocation(0, 1), request(1, 1), allocation(1, 2)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cycle := Detect(tc.edges)
			if tc.expectCycle == nil {
				assert.Nil(t, cycle)
				return
			}
			if assert.NotNil(t, cycle) {
				assert.Equal(t, tc.expectCycle, cycle.Edges)
				assert.Equal(t, tc.expectProcesses, cycle.Processes())
			}
		})
	}
}

func TestDetect_Deterministic(t *testing.T) {
	edges := []*model.Edge{request(1, 0), allocation(1, 1), request(0, 1), allocation(0, 0)}
	first := Detect(edges)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Detect(edges))
	}
}
