package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the driver or the
// deadlock monitor.
type Delta struct {
	Admitted   int
	Dispatched int
	Completed  int
	Killed     int
	Idle       int
	Resolved   int
}

// Counters holds aggregated run counters.
type Counters struct {
	RunID     string
	Scenario  string
	StartedAt time.Time

	Admitted   int
	Dispatched int
	Completed  int
	Killed     int
	Idle       int
	Resolved   int
}

// Progress keeps counters of one run. It is safe for concurrent use.
type Progress struct {
	counters Counters
	mux      sync.Mutex
	onChange func(Counters)
}

// Update applies the supplied delta. The onChange callback, if any, is invoked
// with a copy of the counters outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.counters.Admitted += d.Admitted
	p.counters.Dispatched += d.Dispatched
	p.counters.Completed += d.Completed
	p.counters.Killed += d.Killed
	p.counters.Idle += d.Idle
	p.counters.Resolved += d.Resolved
	snapshot := p.counters
	cb := p.onChange
	p.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the counters.
func (p *Progress) Snapshot() Counters {
	if p == nil {
		return Counters{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.counters
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables it.
func (p *Progress) OnChange(cb func(Counters)) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.onChange = cb
	p.mux.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker, embeds it in a derived context and returns
// both.
func WithNewTracker(ctx context.Context, runID, scenario string, onChange func(Counters)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		counters: Counters{RunID: runID, Scenario: scenario, StartedAt: time.Now()},
		onChange: onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Counters, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Counters{}, false
}

// UpdateCtx applies delta to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
