// Package handler is the first layer. The entry point the Lambda
// runtime invokes for every event.
//
// It decodes the event, prepares the per-invocation context (request id,
// logger, New Relic transaction), calls the service layer, and turns the
// service outcome into the response shape the trigger expects.
package handler
