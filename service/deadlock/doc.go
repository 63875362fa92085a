// Package deadlock detects circular waits in the resource-allocation graph
// and resolves them by terminating one victim per invocation.
//
// The graph has process and resource nodes; a request edge points from a
// process to the resource it waits for and an allocation edge points from a
// resource to the process holding it. A deadlock exists iff the graph has a
// cycle.
package deadlock
