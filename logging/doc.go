// Package logging provides the minimal logging interface used by truss-go.
//
// The Logger interface defines the standard structured logging methods
// (Debug, Info, Warn, Error) the session and managers use. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's log/slog
//   - NoOpLogger for silent operation (the default)
//
// Usage:
//
//	logger := logging.NewSlogAdapter(slog.Default())
//	sess, err := truss.Attach(ctx, launcher, truss.WithLogger(logger))
//
// The interface is intentionally minimal so any structured logger can be
// plugged in with a small adapter.
package logging
