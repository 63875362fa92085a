// Package idgen generates simulation run identifiers. It wraps the UUID
// generator so that tests can stub it; callers treat identifiers as opaque
// strings.
package idgen
