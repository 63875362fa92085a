package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")
	require.NoError(t, Init("ossim", "0.0.1", fname))

	ctx, span := StartSpan(context.Background(), "simulation.run", KindInternal)
	span.WithAttributes(map[string]string{"runId": "r1"}).WithInt("processes", 2)
	current, ok := SpanFromContext(ctx)
	assert.True(t, ok)
	assert.NotNil(t, current)

	_, child := StartSpan(ctx, "deadlock.resolve", KindInternal)
	child.AddEvent("victim", map[string]int{"pid": 0})
	EndSpan(child, errors.New("stalled"))
	EndSpan(span, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "simulation.run")
	assert.Contains(t, string(data), "deadlock.resolve")
}

func TestSpan_Nil(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithInt("a", 1))
	span.SetStatus(nil)
	EndSpan(span, nil)
	_, ok := SpanFromContext(context.Background())
	assert.False(t, ok)
}

func TestInitWithExporter_Nil(t *testing.T) {
	assert.True(t, errors.Is(InitWithExporter("ossim", "0.0.1", nil), ErrNilExporter))
}
