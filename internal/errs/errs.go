// Package errs defines the error taxonomy of the case creator.
//
// Every failure an invocation can hit falls into one of three kinds:
//   - configuration: required environment settings are missing or invalid.
//   - validation: the caller-supplied case name was rejected.
//   - remote_call: the identity lookup or the CreateCase call failed.
//
// Callers classify an error with KindOf instead of inspecting messages.
package errs

import "errors"

// Kind is a string-based enum naming the category of a failure.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindValidation    Kind = "validation"
	KindRemoteCall    Kind = "remote_call"

	// KindUnknown is returned by KindOf for errors outside the taxonomy.
	KindUnknown Kind = "unknown"
)

// KindOf walks the wrap chain of err and reports which taxonomy type it holds.
//
// A nil error has no kind and yields the empty string.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigurationError
	var valErr *ValidationError
	var remoteErr *RemoteCallError

	switch {
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &valErr):
		return KindValidation
	case errors.As(err, &remoteErr):
		return KindRemoteCall
	default:
		return KindUnknown
	}
}
