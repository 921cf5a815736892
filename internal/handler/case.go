package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/deppfellow/connect-case-creator/internal/logger"
	"github.com/deppfellow/connect-case-creator/internal/server"
	"github.com/deppfellow/connect-case-creator/internal/service"
	"github.com/deppfellow/connect-case-creator/internal/validation"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// TransactionCreateCase names the New Relic transaction of one invocation.
const TransactionCreateCase = "CreateCase"

// Event is the invocation payload.
//
// Only name is acted on. Decoding never fails: a name of the wrong type
// surfaces as a validation failure when the request is validated, so the
// invocation still ends with a 500 response.
type Event struct {
	validation.CreateCaseRequest

	// Payload is the event as received (compacted), unknown fields included.
	Payload json.RawMessage `json:"-"`
}

// NewEvent builds an Event for name, as if decoded from {"name": name}.
func NewEvent(name string) Event {
	event := Event{CreateCaseRequest: validation.CreateCaseRequest{Name: name}}
	event.Payload, _ = json.Marshal(map[string]string{"name": name})
	return event
}

// UnmarshalJSON keeps a copy of the raw payload and decodes the request.
func (e *Event) UnmarshalJSON(data []byte) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	e.Payload = buf.Bytes()

	return e.CreateCaseRequest.UnmarshalJSON(data)
}

// Response is the result returned to the trigger.
//
// Body is the JSON encoding of a message string, so a success body reads
// "\"Case created successfully!\"" on the wire.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewResponse builds a Response whose body is message encoded as JSON.
func NewResponse(statusCode int, message string) Response {
	// Marshalling a string cannot fail.
	body, _ := json.Marshal(message)

	return Response{
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// CaseCreator runs the create-case flow for one request.
type CaseCreator interface {
	CreateCase(ctx context.Context, req service.CaseRequest) service.Outcome
}

// CaseHandler handles create-case invocations.
type CaseHandler struct {
	Handler
	cases CaseCreator
}

// NewCaseHandler creates a CaseHandler backed by cases.
func NewCaseHandler(s *server.Server, cases CaseCreator) *CaseHandler {
	return &CaseHandler{
		Handler: NewHandler(s),
		cases:   cases,
	}
}

// Handle is the Lambda entry point.
//
// Behavior:
//   - configuration is checked first; if invalid, the error is returned and
//     no Response is produced, so the runtime records a failed invocation
//   - otherwise every outcome maps to a Response: 200 with the success
//     message, or 500 with a generic message for any recovered failure
//
// Error detail is logged and reported to New Relic, never returned.
func (h *CaseHandler) Handle(ctx context.Context, event Event) (Response, error) {
	ctx, log, end := h.begin(ctx, TransactionCreateCase)
	defer end()

	if err := h.server.Config.Validate(); err != nil {
		log.Error().
			Err(err).
			Str("error_code", errs.Code(err)).
			Msg("configuration is invalid, refusing to handle event")
		logger.NoticeError(ctx, err)

		return Response{}, err
	}

	entry := log.Info()
	if len(event.Payload) > 0 {
		entry = entry.RawJSON("event", event.Payload)
	}
	entry.Msg("event received")

	outcome := h.cases.CreateCase(ctx, &event)
	txn := newrelic.FromContext(ctx)

	if !outcome.Succeeded() {
		log.Error().
			Stack().
			Err(outcome.Err).
			Str("error_code", errs.Code(outcome.Err)).
			Msg("failed to create case")
		logger.NoticeError(ctx, outcome.Err)

		if txn != nil {
			txn.AddAttribute("case.outcome", string(outcome.Kind()))
		}

		return NewResponse(errs.StatusCode(outcome.Err), errs.MessageCaseFailed), nil
	}

	if txn != nil {
		txn.AddAttribute("case.outcome", "created")
		txn.AddAttribute("case.id", outcome.Case.CaseID)
	}

	log.Info().
		Str("case_id", outcome.Case.CaseID).
		Str("account_id", outcome.AccountID).
		Msg("returning success response")

	return NewResponse(http.StatusOK, errs.MessageCaseCreated), nil
}
