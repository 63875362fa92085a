package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		input     *Input
		expectLen int
	}{
		{
			name: "valid scenario",
			input: &Input{
				Quantum:   3,
				Resources: []*ResourceSpec{{RID: 0, Total: 1}},
				Processes: []*ProcessSpec{
					{PID: 0, Arrival: 0, Burst: 4, Priority: 1, Resources: []int{0}},
					{PID: 1, Arrival: 2, Burst: 2, Priority: 2},
				},
			},
		},
		{
			name: "unregistered resource",
			input: &Input{
				Processes: []*ProcessSpec{{PID: 0, Burst: 1, Resources: []int{7}}},
			},
			expectLen: 1,
		},
		{
			name: "non positive capacity and burst",
			input: &Input{
				Resources: []*ResourceSpec{{RID: 0, Total: 0}},
				Processes: []*ProcessSpec{{PID: 0, Burst: 0}},
			},
			expectLen: 2,
		},
		{
			name: "duplicates and negative arrival",
			input: &Input{
				Quantum:   -1,
				Resources: []*ResourceSpec{{RID: 1, Total: 1}, {RID: 1, Total: 2}},
				Processes: []*ProcessSpec{{PID: 3, Burst: 1, Arrival: -2}, {PID: 3, Burst: 1}},
			},
			expectLen: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			issues := tc.input.Validate()
			assert.Len(t, issues, tc.expectLen)
		})
	}
}

func TestInput_Init(t *testing.T) {
	input := &Input{}
	input.Init()
	assert.Equal(t, DefaultQuantum, input.Quantum)

	input = &Input{Quantum: 5}
	input.Init()
	assert.Equal(t, 5, input.Quantum)
}

func TestInput_SortedProcesses(t *testing.T) {
	input := &Input{Processes: []*ProcessSpec{{PID: 2}, nil, {PID: 0}, {PID: 1}}}
	var pids []int
	for _, p := range input.SortedProcesses() {
		pids = append(pids, p.PID)
	}
	assert.Equal(t, []int{0, 1, 2}, pids)
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError(errors.New("a"), errors.New("b"))
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(t, "configuration error: a; b", err.Error())
}

func TestReport_Averages(t *testing.T) {
	report := &Report{Rows: []*PerformanceRow{
		{PID: 0, Waiting: 2, Turnaround: 6},
		{PID: 1, Waiting: 0, Turnaround: 2},
	}}
	assert.Equal(t, 1.0, report.AverageWaiting())
	assert.Equal(t, 4.0, report.AverageTurnaround())
	assert.Equal(t, 6, report.Row(0).Turnaround)
	assert.Nil(t, report.Row(9))
	assert.Equal(t, 0.0, (&Report{}).AverageWaiting())
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "P1 --> R0", (&Edge{Kind: EdgeRequest, PID: 1, RID: 0}).String())
	assert.Equal(t, "R0 --> P1", (&Edge{Kind: EdgeAllocation, PID: 1, RID: 0}).String())
}
