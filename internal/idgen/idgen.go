package idgen

import "github.com/google/uuid"

// NewFunc produces a new identifier. Replace it in tests to get stable ids.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier.
func New() string { return NewFunc() }

// Short returns the first 8 characters of id, used in human readable output.
func Short(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
