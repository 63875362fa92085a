package clock

import "time"

// NowFunc returns current wall time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Logical is the discrete simulation clock. It only moves forward, through
// Advance and Tick, and is unrelated to wall time.
type Logical struct {
	now int
}

// NewLogical returns a clock set to 0.
func NewLogical() *Logical {
	return &Logical{}
}

// Now returns the current logical time.
func (l *Logical) Now() int {
	return l.now
}

// Advance moves the clock forward by d units; non-positive values are ignored.
func (l *Logical) Advance(d int) int {
	if d > 0 {
		l.now += d
	}
	return l.now
}

// Tick advances the clock by a single unit.
func (l *Logical) Tick() int {
	return l.Advance(1)
}
