package truss

import (
	"errors"
	"fmt"
)

// Kind classifies a failure produced by the call pipeline.
type Kind string

const (
	// KindInvalidArgument means pre-call validation rejected the inputs.
	// The engine was never invoked.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindEngineRejected means the engine returned a non-success status
	// code. The code is carried in [Error.Code].
	KindEngineRejected Kind = "ENGINE_REJECTED"

	// KindMarshalling means the engine reported success but its outputs
	// violated the declared shape, or building typed records failed.
	KindMarshalling Kind = "MARSHALLING_ERROR"

	// KindSessionUnavailable means no connectable or compatible engine
	// instance exists, or a call was issued through a closed session.
	KindSessionUnavailable Kind = "SESSION_UNAVAILABLE"

	// KindUnexpected covers any other runtime failure caught inside the
	// call pipeline. The original error is always chained as the cause.
	KindUnexpected Kind = "UNEXPECTED"
)

// Stage identifies where in the call pipeline a failure originated.
type Stage string

const (
	StageValidating Stage = "validating"
	StageInvoking   Stage = "invoking"
	StageExtracting Stage = "extracting"
)

const (
	// CodeOK is the engine's success sentinel.
	CodeOK = 0

	// CodeNone marks failures for which the engine never produced a
	// status code (validation failures, marshalling failures, disposed
	// sessions).
	CodeNone = -1
)

// Error is the single failure type surfaced by this SDK.
//
// Collaborators (CLI layers, RPC adapters) are expected to catch *Error at
// their boundary and translate Kind/Op/Code/Message into their own
// transport shape instead of propagating raw engine state.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Op is the qualified engine operation, e.g. "Frames.SetReleases".
	// Empty for failures raised outside any single operation.
	Op string

	// Stage is the pipeline stage the failure originated in.
	Stage Stage

	// Code is the engine status code, or CodeNone if the engine never
	// produced one.
	Code int

	// Message is a human-readable description.
	Message string

	// Cause is the original error when the failure wraps one.
	Cause error
}

func (e *Error) Error() string {
	op := e.Op
	if op == "" {
		op = "session"
	}
	var s string
	if e.Code != CodeNone {
		s = fmt.Sprintf("truss: %s: %s (code %d): %s", op, e.Kind, e.Code, e.Message)
	} else {
		s = fmt.Sprintf("truss: %s: %s: %s", op, e.Kind, e.Message)
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	terr, ok := AsError(err)
	return ok && terr.Kind == kind
}

// AsError unwraps err to the SDK error type.
func AsError(err error) (*Error, bool) {
	var terr *Error
	ok := errors.As(err, &terr)
	return terr, ok
}
