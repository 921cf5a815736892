package errs

import (
	"errors"

	"github.com/aws/smithy-go"
)

// APIErrorCode returns the AWS error code carried by err (for example
// "AccessDeniedException"), or "" when err did not come from an AWS API.
//
// The code is for logs only; remote failures are never handled differently
// by kind.
func APIErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
