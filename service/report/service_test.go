package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
)

func TestGanttLine(t *testing.T) {
	testCases := []struct {
		name     string
		timeline []*model.DispatchEvent
		expect   string
	}{
		{name: "empty", expect: "|"},
		{
			name: "two slices",
			timeline: []*model.DispatchEvent{
				{PID: 1, Start: 0, Duration: 2},
				{PID: 0, Start: 2, Duration: 4},
			},
			expect: "| P1(2) | P0(4) |",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, GanttLine(tc.timeline))
		})
	}
}

func renderedReport() *model.Report {
	return &model.Report{
		RunID:             "0123456789abcdef",
		Name:              "B",
		Clock:             2,
		ContextSwitches:   1,
		DeadlocksResolved: 1,
		Timeline:          []*model.DispatchEvent{{PID: 1, Start: 0, Duration: 2, Policy: "srt"}},
		Rows: []*model.PerformanceRow{
			{PID: 0, Burst: 3, Waiting: -3, Finished: true, Killed: true},
			{PID: 1, Burst: 2, Turnaround: 2, FinishTime: 2, Finished: true},
		},
		Resolutions: []*model.Resolution{{
			Victim:   0,
			Cycle:    []*model.Edge{{Kind: model.EdgeRequest, PID: 0, RID: 1}, {Kind: model.EdgeAllocation, PID: 1, RID: 1}},
			Released: []int{0},
		}},
		Edges: []*model.Edge{{Kind: model.EdgeRequest, PID: 2, RID: 0}, {Kind: model.EdgeAllocation, PID: 3, RID: 0}},
		Error: "boom",
	}
}

func TestService_Render(t *testing.T) {
	report := renderedReport()
	buf := &bytes.Buffer{}
	require.NoError(t, New(WithTimes(true)).Render(buf, report))
	output := buf.String()

	assert.Contains(t, output, "Simulation 01234567 (B)")
	assert.Contains(t, output, "| P1(2) |")
	assert.Contains(t, output, "0\t2")
	assert.Contains(t, output, "killed")
	assert.Contains(t, output, "-1.50")
	assert.Contains(t, output, "Context Switches: 1")
	assert.Contains(t, output, "Deadlocks Detected and Resolved: 1")
	assert.Contains(t, output, "P0 --> R1, R1 --> P1")
	assert.Contains(t, output, "P2 --> R0\nR0 --> P3\n")
	assert.Contains(t, output, "Error: boom")

	assert.Error(t, New().Render(buf, nil))
}

func TestService_GraphEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, New().Graph(buf, &model.Report{}))
	assert.Contains(t, buf.String(), "(no edges)")
}

var errWrite = errors.New("write failed")

// failingWriter fails the write with index failAt
type failingWriter struct {
	writes int
	failAt int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	defer func() { w.writes++ }()
	if w.writes == w.failAt {
		return 0, errWrite
	}
	return len(p), nil
}

func TestService_RenderWriteError(t *testing.T) {
	testCases := []struct {
		name          string
		failAt        int
		expectSection string
	}{
		{name: "title", failAt: 0, expectSection: "title"},
		{name: "gantt", failAt: 1, expectSection: "gantt chart"},
		{name: "performance", failAt: 2, expectSection: "performance"},
		{name: "summary", failAt: 3, expectSection: "summary"},
		{name: "resolutions", failAt: 4, expectSection: "resolutions"},
		{name: "graph", failAt: 5, expectSection: "graph"},
		{name: "error line", failAt: 6, expectSection: "error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New().Render(&failingWriter{failAt: tc.failAt}, renderedReport())
			require.Error(t, err)
			assert.True(t, errors.Is(err, errWrite))
			assert.Contains(t, err.Error(), "failed to render "+tc.expectSection)
		})
	}
	assert.NoError(t, New().Render(&failingWriter{failAt: 7}, renderedReport()))
}
