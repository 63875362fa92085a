package event

import "time"

// Event types emitted by the simulation driver
const (
	TypeAdmitted   = "admitted"
	TypeGranted    = "granted"
	TypeDispatched = "dispatched"
	// TypeExtended carries a timeline entry grown by a slice of the same process
	TypeExtended   = "extended"
	TypeTerminated = "terminated"
	TypeResolved   = "resolved"
	TypeIdle       = "idle"
	TypeStalled    = "stalled"
)

// Context identifies where in a run an event happened
type Context struct {
	RunID     string `json:"runId"`
	Clock     int    `json:"clock"`
	EventType string `json:"eventType"`
	PID       int    `json:"pid"`
	// Seq orders events sharing the same clock value
	Seq int `json:"seq"`
}

type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: time.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
