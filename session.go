package truss

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/trusslab/truss-go/logging"
)

// Driver is the raw automation surface of one running engine instance.
//
// Implementations bind operation names to the underlying engine (a COM
// dispatch, an IPC bridge, or an in-process fake in tests). Invoke takes
// the operation's input values first, followed by pointers the engine
// writes outputs through, in the order the engine documents them. The
// returned code is the engine status; a non-nil error means the automation
// channel itself failed and the session should be considered dead.
type Driver interface {
	Invoke(op string, args ...any) (code int, err error)

	// Version reports the engine build version, e.g. "21.2.0".
	Version() (string, error)

	// Close releases the underlying automation handle.
	Close() error
}

// Launcher locates or starts engine instances and yields drivers bound to
// them. Real implementations are platform bindings outside this module.
type Launcher interface {
	// Attach binds to an already running engine instance. It returns an
	// error when no instance is reachable.
	Attach(ctx context.Context) (Driver, error)

	// Launch starts a new engine instance. path is the engine executable
	// to start, or empty to use the launcher's default installation.
	Launch(ctx context.Context, path string) (Driver, error)
}

// Mode records how a session obtained its engine instance.
type Mode string

const (
	// ModeAttached means the session bound to an engine that was already
	// running.
	ModeAttached Mode = "attached"

	// ModeLaunched means the session started its own engine instance.
	ModeLaunched Mode = "launched"
)

// Session is one live connection to an engine instance.
//
// A session is created by [Attach] or [Launch], owns its driver, and must
// be closed exactly once with [Session.Close]. All manager calls go
// through the session; calls after Close fail with
// [KindSessionUnavailable]. A session must not be shared across
// goroutines without external serialization, see the package
// documentation.
type Session struct {
	id      string
	driver  Driver
	mode    Mode
	version string
	logger  logging.Logger
	closed  atomic.Bool

	managers registry
}

// Attach binds to an already running engine instance and verifies its
// version is inside the supported range.
func Attach(ctx context.Context, launcher Launcher, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	driver, err := launcher.Attach(ctx)
	if err != nil {
		return nil, &Error{
			Kind:    KindSessionUnavailable,
			Stage:   StageInvoking,
			Code:    CodeNone,
			Message: "no running engine instance available",
			Cause:   err,
		}
	}
	return newSession(driver, ModeAttached, cfg)
}

// Launch starts a new engine instance and verifies its version is inside
// the supported range. The engine path can be set with [WithEnginePath]
// or a profile; empty means the launcher's default installation.
func Launch(ctx context.Context, launcher Launcher, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	driver, err := launcher.Launch(ctx, cfg.enginePath)
	if err != nil {
		return nil, &Error{
			Kind:    KindSessionUnavailable,
			Stage:   StageInvoking,
			Code:    CodeNone,
			Message: "engine instance could not be started",
			Cause:   err,
		}
	}
	return newSession(driver, ModeLaunched, cfg)
}

func newSession(driver Driver, mode Mode, cfg *config) (*Session, error) {
	version, err := driver.Version()
	if err != nil {
		_ = driver.Close()
		return nil, &Error{
			Kind:    KindSessionUnavailable,
			Stage:   StageInvoking,
			Code:    CodeNone,
			Message: "engine did not report a version",
			Cause:   err,
		}
	}

	if !cfg.skipVersionCheck {
		compat := checkCompatibility(version, cfg.versionRange)
		if !compat.IsCompatible() {
			_ = driver.Close()
			return nil, &Error{
				Kind:    KindSessionUnavailable,
				Stage:   StageInvoking,
				Code:    CodeNone,
				Message: compat.Message,
			}
		}
	}

	s := &Session{
		id:      uuid.NewString(),
		driver:  driver,
		mode:    mode,
		version: version,
		logger:  cfg.logger,
	}
	s.logger.Info("engine session established",
		"session_id", s.id, "mode", string(mode), "engine_version", version)
	return s, nil
}

// ID is the unique identifier of this session, used in log attributes.
func (s *Session) ID() string { return s.id }

// Version is the engine version the session is bound to.
func (s *Session) Version() string { return s.version }

// Mode reports whether the session attached to a running engine or
// launched its own.
func (s *Session) Mode() Mode { return s.mode }

// Close releases the engine handle. It is idempotent; only the first call
// closes the driver. Any call through the session after Close fails with
// [KindSessionUnavailable].
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.logger.Info("engine session closed", "session_id", s.id)
	return s.driver.Close()
}
