// Package model contains the data exchanged between the simulation engine and
// its callers: the scenario input (process and resource specifications, the
// quantum) and the report produced at the end of a run (dispatch timeline,
// per-process statistics, deadlock resolutions and the resource-allocation
// graph).
//
// The types carry both JSON and YAML tags so that a scenario can be decoded
// from either format and a report can be emitted as JSON.
package model
