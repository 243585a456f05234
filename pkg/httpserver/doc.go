// Package httpserver wraps net/http's server with graceful shutdown,
// signal handling and env-driven configuration so the serve command stays
// small. Run blocks until the context is cancelled, an interrupt arrives or
// the listener fails.
package httpserver
