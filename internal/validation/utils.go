package validation

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// MaxCaseNameLength is the longest case title accepted, in characters.
const MaxCaseNameLength = 100

// UnsafeMarker is the literal substring rejected in case names.
//
// The check is an exact, case-sensitive match. It is not HTML sanitization:
// "<SCRIPT>" or "<img onerror=...>" pass.
const UnsafeMarker = "<script>"

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// CreateCaseRequest is the part of the invocation event the function acts on.
//
// Tags run in order and stop at the first failure, so an empty name reports
// "missing" and never reaches the length or content checks.
type CreateCaseRequest struct {
	Name string `json:"name" validate:"required,max=100,noscript"`

	// decodeErr is set by UnmarshalJSON when the payload had no usable name.
	decodeErr error
}

// UnmarshalJSON decodes a request without ever failing.
//
// A payload that is not an object, or a name that is not a string, is kept
// as a validation failure and reported by Validate. An absent or null name
// decodes to "" and is reported as missing.
func (r *CreateCaseRequest) UnmarshalJSON(data []byte) error {
	*r = CreateCaseRequest{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		r.decodeErr = errors.WithStack(errs.NewValidationError("event", errs.ReasonWrongType))
		return nil
	}

	raw, ok := fields["name"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(raw, &r.Name); err != nil {
		r.decodeErr = errors.WithStack(errs.NewValidationError("name", errs.ReasonWrongType))
	}

	return nil
}

// CaseName returns the decoded case name.
func (r *CreateCaseRequest) CaseName() string {
	return r.Name
}

// Validate checks the request and returns a *errs.ValidationError on failure.
func (r *CreateCaseRequest) Validate() error {
	if r.decodeErr != nil {
		return r.decodeErr
	}

	if err := validate.Struct(r); err != nil {
		return extractValidationError(err)
	}
	return nil
}

// ValidateCaseName validates a caller-supplied case name.
//
// It fails with reason "missing" if name is empty, "too long" if it has more
// than MaxCaseNameLength characters, and "unsafe content" if it contains
// UnsafeMarker. It returns nil otherwise.
func ValidateCaseName(name string) error {
	req := &CreateCaseRequest{Name: name}
	return req.Validate()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name ("name"), matching the event payload.
	v.RegisterTagNameFunc(jsonTagName)

	// noscript fails when the string contains UnsafeMarker.
	if err := v.RegisterValidation("noscript", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), UnsafeMarker)
	}); err != nil {
		panic(err)
	}

	return v
}

// extractValidationError converts the first validator failure into a
// *errs.ValidationError with a stack attached.
func extractValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errors.WithStack(err)
	}

	fe := validationErrors[0]

	var reason errs.ValidationReason
	switch fe.Tag() {
	case "required":
		reason = errs.ReasonMissing

	case "max":
		reason = errs.ReasonTooLong

	case "noscript":
		reason = errs.ReasonUnsafeContent

	default:
		// Fallback for tags not explicitly handled above.
		reason = errs.ValidationReason(fe.Tag())
	}

	return errors.WithStack(errs.NewValidationError(fe.Field(), reason))
}
