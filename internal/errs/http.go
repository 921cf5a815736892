package errs

import (
	"net/http"
	"strings"
)

// Messages returned to the invoking trigger.
//
// The failure message is deliberately generic: error detail is logged and
// never returned to the caller.
const (
	MessageCaseCreated = "Case created successfully!"
	MessageCaseFailed  = "failed to create case. Please contact your admin"
)

// StatusCode maps an error to the status code of the invocation response.
//
// nil means success (200). Every recovered failure maps to 500; the kind is
// kept for logs and tests, not for the caller.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	return http.StatusInternalServerError
}

// Code returns a stable machine-readable code for err, suitable for log fields.
//
// Example:
//
//	remote_call -> "REMOTE_CALL"
func Code(err error) string {
	if err == nil {
		return ""
	}

	return MakeUpperCaseWithUnderscores(string(KindOf(err)))
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"too long" -> "TOO_LONG"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
