// Package execution holds the runtime state of a simulation: process records,
// the process table, the ready queue and the SimulationState aggregating them
// with the logical clock and the resource registry.
package execution
