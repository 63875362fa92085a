// Package tracing wraps OpenTelemetry so that simulation runs and deadlock
// resolutions can be observed as spans without the rest of the code importing
// the upstream packages.
package tracing
