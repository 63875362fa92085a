// Package driver runs a simulation: it owns the logical clock, admits arrived
// processes and grants their resource requests, asks the dispatcher for the
// next process, applies the quantum slice and invokes the deadlock monitor,
// until every process is terminated.
//
// The loop moves through the Admitting, Dispatching, Executing and Monitoring
// phases on a normal iteration, through Idle when nothing is dispatchable,
// and ends in Done. A run that idles longer than any arrival can explain
// fails with a StalledError.
package driver
