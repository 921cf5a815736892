package errs

import (
	"fmt"
	"strings"
)

// ValidationReason describes why a case name was rejected.
type ValidationReason string

const (
	ReasonMissing       ValidationReason = "missing"
	ReasonTooLong       ValidationReason = "too long"
	ReasonUnsafeContent ValidationReason = "unsafe content"

	// ReasonWrongType is reported when the event carries a name that is not
	// a string, or is not a JSON object at all.
	ReasonWrongType ValidationReason = "wrong type"
)

// ConfigurationError is returned when the process environment cannot satisfy
// the configuration contract.
//
// Missing lists every absent environment variable, not just the first one.
// Err carries any other problem found (e.g. an unknown log level).
type ConfigurationError struct {
	Missing []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	var parts []string

	if len(e.Missing) > 0 {
		parts = append(parts, "missing required environment variables: "+strings.Join(e.Missing, ", "))
	}

	if e.Err != nil {
		parts = append(parts, "invalid configuration: "+e.Err.Error())
	}

	if len(parts) == 0 {
		return "invalid configuration"
	}

	return strings.Join(parts, "; ")
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when caller input fails validation.
type ValidationError struct {
	// Field is the input field that failed (e.g. "name").
	Field string

	// Reason is the machine-friendly failure kind.
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is invalid: %s", e.Field, e.Reason)
}

// Is reports whether target is a *ValidationError with the same Reason.
//
// A target with an empty Reason matches any ValidationError, so
//
//	errors.Is(err, &errs.ValidationError{})
//
// works as a type check.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}

	return t.Reason == "" || t.Reason == e.Reason
}

// RemoteCallError wraps a failure returned by an outbound AWS call.
//
// All remote failures (network, auth, throttling, service-side validation)
// are treated the same; the original error is kept for logging only.
type RemoteCallError struct {
	// Op names the remote operation, e.g. "sts:GetCallerIdentity".
	Op string

	Err error
}

func (e *RemoteCallError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}

	return e.Op + " failed: " + e.Err.Error()
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field string, reason ValidationReason) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewRemoteCallError wraps err as a failure of the remote operation op.
func NewRemoteCallError(op string, err error) *RemoteCallError {
	return &RemoteCallError{Op: op, Err: err}
}

// NewMissingConfigError reports the given environment variables as absent.
func NewMissingConfigError(missing ...string) *ConfigurationError {
	return &ConfigurationError{Missing: missing}
}
