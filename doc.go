// Package ossim simulates a single-machine operating system: processes are
// admitted at their arrival time, dispatched under a policy adapted to the
// ready set size, and compete for resources; circular waits are detected on
// the resource-allocation graph and broken by terminating a victim.
//
// Typical use:
//
//	srv := ossim.New()
//	report, err := srv.SimulateURL(ctx, "scenario.yaml")
//	_ = srv.Render(os.Stdout, report)
//
// The engine itself lives in service/driver; this package wires it with the
// scenario loader, the report store, events and tracing.
package ossim
