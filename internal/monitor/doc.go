// Package monitor exposes process runtime facts to the API layer.
//
// The monitor captures the service start time once and derives uptime
// from it; process identity (PID, host OS, architecture, hostname) is
// read from the runtime.
package monitor
