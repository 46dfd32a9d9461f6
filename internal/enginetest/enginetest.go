// Package enginetest provides an in-process fake of the engine automation
// surface for tests. The fake records every call and dispatches operations
// to scriptable handlers that write outputs through the call's pointer
// arguments, exactly like the real engine does.
package enginetest

import (
	"context"
	"errors"
	"sync"

	truss "github.com/trusslab/truss-go"
)

// Handler services one operation. args are the call arguments as the
// manager passed them: input values first, then output pointers. The
// return value is the engine status code.
type Handler func(args []any) int

// Call records one dispatched operation.
type Call struct {
	Op   string
	Args []any
}

// Engine is a scriptable fake truss.Driver.
type Engine struct {
	mu       sync.Mutex
	version  string
	handlers map[string]Handler
	calls    []Call
	closed   bool

	// InvokeErr, when set, makes every Invoke fail at the channel level
	// (simulating a dead automation link).
	InvokeErr error
}

// New creates a fake engine reporting the given version.
func New(version string) *Engine {
	return &Engine{
		version:  version,
		handlers: make(map[string]Handler),
	}
}

// Handle scripts the handler for one operation. Unscripted operations
// succeed with code 0 and leave outputs untouched.
func (e *Engine) Handle(op string, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[op] = h
}

// Invoke implements truss.Driver.
func (e *Engine) Invoke(op string, args ...any) (int, error) {
	e.mu.Lock()
	e.calls = append(e.calls, Call{Op: op, Args: args})
	h := e.handlers[op]
	err := e.InvokeErr
	e.mu.Unlock()

	if err != nil {
		return 0, err
	}
	if h == nil {
		return 0, nil
	}
	return h(args), nil
}

// Version implements truss.Driver.
func (e *Engine) Version() (string, error) {
	if e.version == "" {
		return "", errors.New("enginetest: no version configured")
	}
	return e.version, nil
}

// Close implements truss.Driver.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// Calls returns the recorded calls for one operation, in dispatch order.
func (e *Engine) Calls(op string) []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []Call
	for _, c := range e.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// CallCount returns how many times op was dispatched.
func (e *Engine) CallCount(op string) int {
	return len(e.Calls(op))
}

// Launcher is a truss.Launcher that hands out a fixed fake engine.
type Launcher struct {
	Engine *Engine

	// AttachErr / LaunchErr simulate connection failures.
	AttachErr error
	LaunchErr error

	// LaunchedPath records the path the last Launch received.
	LaunchedPath string
}

// Attach implements truss.Launcher.
func (l *Launcher) Attach(ctx context.Context) (truss.Driver, error) {
	if l.AttachErr != nil {
		return nil, l.AttachErr
	}
	return l.Engine, nil
}

// Launch implements truss.Launcher.
func (l *Launcher) Launch(ctx context.Context, path string) (truss.Driver, error) {
	if l.LaunchErr != nil {
		return nil, l.LaunchErr
	}
	l.LaunchedPath = path
	return l.Engine, nil
}

// SetString writes v through the output pointer at args[i]. Helper for
// handlers, panicking on a wrong argument type exactly like a real
// automation marshaller would surface a shape bug.
func SetString(args []any, i int, v string) { *(args[i].(*string)) = v }

// SetInt writes v through the output pointer at args[i].
func SetInt(args []any, i int, v int) { *(args[i].(*int)) = v }

// SetFloat writes v through the output pointer at args[i].
func SetFloat(args []any, i int, v float64) { *(args[i].(*float64)) = v }

// SetBool writes v through the output pointer at args[i].
func SetBool(args []any, i int, v bool) { *(args[i].(*bool)) = v }

// SetStrings writes v through the output array pointer at args[i].
func SetStrings(args []any, i int, v []string) { *(args[i].(*[]string)) = v }

// SetInts writes v through the output array pointer at args[i].
func SetInts(args []any, i int, v []int) { *(args[i].(*[]int)) = v }

// SetFloats writes v through the output array pointer at args[i].
func SetFloats(args []any, i int, v []float64) { *(args[i].(*[]float64)) = v }

// SetBools writes v through the output array pointer at args[i].
func SetBools(args []any, i int, v []bool) { *(args[i].(*[]bool)) = v }
