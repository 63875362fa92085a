// Package report renders a simulation report as text: the Gantt sequence,
// the per-process table with averages, the deadlock resolutions and the
// resource-allocation graph.
package report
