package driver

import (
	"errors"
	"fmt"

	"github.com/viant/ossim/runtime/execution"
)

// ErrStalled is matched (errors.Is) by every StalledError.
var ErrStalled = errors.New("simulation stalled")

// StalledError reports a run that cannot progress although no deadlock cycle
// explains it.
type StalledError struct {
	Clock     int
	IdleTicks int
	Snapshot  *execution.Snapshot
}

func (e *StalledError) Error() string {
	return fmt.Sprintf("%v at clock %d after %d idle ticks: %v", ErrStalled, e.Clock, e.IdleTicks, e.Snapshot)
}

func (e *StalledError) Unwrap() error {
	return ErrStalled
}
