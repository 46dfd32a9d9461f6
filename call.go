package truss

import (
	"context"
	"fmt"
	"math"
)

// Validator checks one input before the engine is touched. A non-nil
// return fails the call with [KindInvalidArgument] and the engine is never
// invoked.
type Validator func() error

func nonEmpty(field, value string) Validator {
	return func() error {
		if value == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

func finite(field string, value float64) Validator {
	return func() error {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%s must be finite, got %v", field, value)
		}
		return nil
	}
}

func positive(field string, value float64) Validator {
	return func() error {
		if !(value > 0) {
			return fmt.Errorf("%s must be positive, got %v", field, value)
		}
		return nil
	}
}

func inUnitRange(field string, value float64) Validator {
	return func() error {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", field, value)
		}
		return nil
	}
}

func atLeast(field string, n, min int) Validator {
	return func() error {
		if n < min {
			return fmt.Errorf("%s requires at least %d entries, got %d", field, min, n)
		}
		return nil
	}
}

// call runs one engine operation through the shared pipeline:
// validate, invoke, check the status code, extract outputs. Every abnormal
// path is normalized into *Error; extract runs only after a success code
// and its failures (including panics) become marshalling or unexpected
// errors with the original cause chained.
//
// args hold the operation's input values followed by output pointers, in
// the engine's documented order.
func (s *Session) call(ctx context.Context, op string, validators []Validator, args []any, extract func() error) (err error) {
	if s.closed.Load() {
		return &Error{
			Kind:    KindSessionUnavailable,
			Op:      op,
			Stage:   StageValidating,
			Code:    CodeNone,
			Message: "session is closed",
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &Error{
			Kind:    KindUnexpected,
			Op:      op,
			Stage:   StageValidating,
			Code:    CodeNone,
			Message: "call abandoned before dispatch",
			Cause:   ctxErr,
		}
	}

	for _, v := range validators {
		if verr := v(); verr != nil {
			s.logger.Debug("engine call rejected by validation",
				"session_id", s.id, "op", op, "error", verr.Error())
			return &Error{
				Kind:    KindInvalidArgument,
				Op:      op,
				Stage:   StageValidating,
				Code:    CodeNone,
				Message: verr.Error(),
			}
		}
	}

	stage := StageInvoking
	defer func() {
		if r := recover(); r != nil {
			err = &Error{
				Kind:    KindUnexpected,
				Op:      op,
				Stage:   stage,
				Code:    CodeNone,
				Message: "panic in call pipeline",
				Cause:   fmt.Errorf("panic: %v", r),
			}
		}
	}()

	s.logger.Debug("engine call", "session_id", s.id, "op", op)
	code, invokeErr := s.driver.Invoke(op, args...)
	if invokeErr != nil {
		s.logger.Error("engine channel failed",
			"session_id", s.id, "op", op, "error", invokeErr.Error())
		return &Error{
			Kind:    KindSessionUnavailable,
			Op:      op,
			Stage:   StageInvoking,
			Code:    CodeNone,
			Message: "automation channel failed",
			Cause:   invokeErr,
		}
	}
	if code != CodeOK {
		s.logger.Warn("engine rejected operation",
			"session_id", s.id, "op", op, "code", code)
		return &Error{
			Kind:    KindEngineRejected,
			Op:      op,
			Stage:   StageInvoking,
			Code:    code,
			Message: "engine rejected the operation",
		}
	}

	// The code is authoritative from here on: extraction failures never
	// re-enter validation or report an engine code.
	stage = StageExtracting
	if extract != nil {
		if exErr := extract(); exErr != nil {
			s.logger.Warn("engine output marshalling failed",
				"session_id", s.id, "op", op, "error", exErr.Error())
			return &Error{
				Kind:    KindMarshalling,
				Op:      op,
				Stage:   StageExtracting,
				Code:    CodeNone,
				Message: "engine outputs could not be marshalled",
				Cause:   exErr,
			}
		}
	}
	return nil
}
