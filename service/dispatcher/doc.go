// Package dispatcher selects the next process to run from the ready set using
// a policy chosen by the ready set size: shortest remaining time for small
// sets, priority for medium sets and round-robin beyond that. Selection never
// mutates the ready set or the processes.
package dispatcher
