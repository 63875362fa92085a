// Package resource owns resource capacity and the two edge sets of the
// resource-allocation graph: request edges (process waits for resource) and
// allocation edges (resource unit held by process).
//
// The registry is the only place where resource availability changes:
// Allocate decrements it, Release restores it. Availability never leaves
// the [0, total] range.
package resource
