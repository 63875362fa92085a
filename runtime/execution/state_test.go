package execution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
)

func TestNewSimulationState(t *testing.T) {
	testCases := []struct {
		name      string
		input     *model.Input
		expectErr bool
		quantum   int
	}{
		{
			name: "default quantum",
			input: &model.Input{Processes: []*model.ProcessSpec{
				{PID: 1, Burst: 2}, {PID: 0, Burst: 4},
			}},
			quantum: model.DefaultQuantum,
		},
		{
			name: "unknown resource",
			input: &model.Input{Processes: []*model.ProcessSpec{
				{PID: 0, Burst: 2, Resources: []int{3}},
			}},
			expectErr: true,
		},
		{
			name: "zero capacity",
			input: &model.Input{
				Processes: []*model.ProcessSpec{{PID: 0, Burst: 2}},
				Resources: []*model.ResourceSpec{{RID: 0, Total: 0}},
			},
			expectErr: true,
		},
		{
			name:      "nil input",
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state, err := NewSimulationState("run", tc.input)
			if tc.expectErr {
				assert.True(t, errors.Is(err, model.ErrConfiguration))
				assert.Nil(t, state)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.quantum, state.Quantum)
			assert.Equal(t, 0, state.Clock.Now())
			assert.Equal(t, 0, tc.input.Quantum)
			assert.Equal(t, 0, state.Table.Processes()[0].PID)
		})
	}
}

func TestSimulationState_RecordDispatch(t *testing.T) {
	state, err := NewSimulationState("run", &model.Input{Processes: []*model.ProcessSpec{
		{PID: 0, Burst: 4}, {PID: 1, Burst: 2},
	}})
	require.NoError(t, err)

	_, switched := state.RecordDispatch(1, 0, 2, "srt")
	assert.True(t, switched)
	_, switched = state.RecordDispatch(0, 2, 3, "srt")
	assert.True(t, switched)
	event, switched := state.RecordDispatch(0, 5, 1, "srt")
	assert.False(t, switched)
	assert.Equal(t, 4, event.Duration)

	// a gap breaks continuity
	_, switched = state.RecordDispatch(0, 8, 1, "srt")
	assert.True(t, switched)
	assert.Equal(t, len(state.Timeline), state.ContextSwitches)
	assert.Equal(t, 3, state.ContextSwitches)
}

func TestSimulationState_Terminate(t *testing.T) {
	state, err := NewSimulationState("run", &model.Input{
		Processes: []*model.ProcessSpec{{PID: 0, Burst: 4, Resources: []int{0, 1}}},
		Resources: []*model.ResourceSpec{{RID: 0, Total: 1}, {RID: 1, Total: 1}},
	})
	require.NoError(t, err)
	require.NoError(t, state.Registry.Allocate(0, 0))
	state.Ready.Push(0)
	state.Clock.Advance(3)

	process := state.Table.Lookup(0)
	released := state.Terminate(process, true)
	assert.Equal(t, []int{0}, released)
	assert.False(t, state.Ready.Contains(0))
	assert.Equal(t, 2, state.Registry.TotalAvailable())
	assert.Empty(t, state.Registry.Edges())
	assert.Equal(t, 3, process.FinishTime)
	assert.Nil(t, state.Terminate(process, true))

	report := state.Report()
	assert.Equal(t, "run", report.RunID)
	assert.Equal(t, 3, report.Clock)
	assert.True(t, report.Row(0).Killed)

	snapshot := state.Snapshot()
	assert.Equal(t, 0, snapshot.Unfinished)
	assert.Contains(t, snapshot.String(), "clock=3")
}
