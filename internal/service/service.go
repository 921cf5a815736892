// Package service contains the business logic.
//
// It sits between the handler and the AWS client layer.
// It receives the raw case name from the handler, validates it,
// resolves the caller identity, and asks the Cases client to
// open the case, reporting the result as an Outcome.
package service
