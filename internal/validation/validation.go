// Package validation contains the logic for validating
// invocation input.
//
// It uses the `validator` library to enforce rules (like
// required fields or length limits) defined in struct tags
// and converts validation failures into *errs.ValidationError
// values the handler can classify.
package validation
