// Package timeouts defines the HTTP timeouts shared by the commands.
package timeouts

import "time"

// ReadHeader limits how long the server waits for request headers.
const ReadHeader = 5 * time.Second

// Write bounds a single response, including PDF generation.
const Write = 30 * time.Second

// Idle closes keep-alive connections left unused.
const Idle = 60 * time.Second

// Shutdown limits how long the server waits for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds the final span flush on exit.
const TelemetryShutdown = 5 * time.Second
