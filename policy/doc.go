// Package policy defines the scheduling policies the dispatcher adapts between
// and the ready-set size thresholds selecting them. A Config can be attached to
// a run via context to override the dispatcher defaults.
package policy
