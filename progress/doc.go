// Package progress defines a tracker that aggregates the counters of a single
// simulation run (processes admitted, slices dispatched, completions, victims,
// idle ticks). The tracker travels in the context so that the driver and the
// deadlock monitor can update it without sharing a global registry.
package progress
