package paramkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. ParamError unwraps to one of the
// call-time sentinels, so errors.Is works on validator results.
var (
	// ErrSpecDefinition is returned at construction time: duplicate
	// parameter name, a default on a required parameter, or a default that
	// fails its own capability check. It is never deferred to call time.
	ErrSpecDefinition = errors.New("invalid parameter spec")

	// ErrMissingRequired is returned when a required parameter is absent.
	ErrMissingRequired = errors.New("missing required parameter")

	// ErrUnknownParameter is returned in strict named mode for an
	// undeclared key, and in positional mode for excess arguments.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrTypeMismatch is returned when a supplied value is rejected by its
	// parameter's capability.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidArguments is returned when the raw argument container does
	// not match the validator's source mode (e.g. a slice handed to a
	// named-mode validator).
	ErrInvalidArguments = errors.New("invalid arguments shape")
)

// ParamError is a single call-time validation failure. It names the offending
// parameter and carries a human-readable reason supplied by the capability.
type ParamError struct {
	Param  string
	Reason string
	kind   error
}

func (e *ParamError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("parameter %q: %v", e.Param, e.kind)
	}
	return fmt.Sprintf("parameter %q: %v: %s", e.Param, e.kind, e.Reason)
}

func (e *ParamError) Unwrap() error { return e.kind }

// ExtractParamError returns the ParamError inside err, or nil if err does not
// originate from a compiled validator.
func ExtractParamError(err error) *ParamError {
	var pe *ParamError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}

// IsValidationError reports whether err is any call-time validation failure.
func IsValidationError(err error) bool {
	return ExtractParamError(err) != nil
}

func missingErr(name string) *ParamError {
	return &ParamError{Param: name, kind: ErrMissingRequired}
}

func unknownErr(name string) *ParamError {
	return &ParamError{Param: name, Reason: "not declared in spec", kind: ErrUnknownParameter}
}

func mismatchErr(name string, cause error) *ParamError {
	return &ParamError{Param: name, Reason: cause.Error(), kind: ErrTypeMismatch}
}
