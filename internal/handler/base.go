package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/deppfellow/connect-case-creator/internal/server"
	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared process dependencies.
//
// It is embedded by concrete handlers (e.g. CaseHandler) so they can
// access shared resources via *server.Server (config, logger, clients).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Invocation holds what a handler knows about the current invocation.
type Invocation struct {
	// RequestID is the Lambda request id, or a generated UUID when the
	// handler is driven outside the Lambda runtime.
	RequestID string

	// FunctionName is empty outside the Lambda runtime.
	FunctionName string
}

// GetRequestID returns the Lambda request id carried by ctx.
//
// Outside the runtime there is none, so a UUID is generated to keep log
// lines of one invocation correlated.
func GetRequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}

	return uuid.New().String()
}

// begin starts the New Relic transaction for an invocation and builds the
// invocation logger.
//
// The returned context carries both the transaction and the logger, so
// lower layers log through zerolog.Ctx(ctx). The returned func ends the
// transaction and must be deferred.
func (h Handler) begin(ctx context.Context, name string) (context.Context, *zerolog.Logger, func()) {
	inv := Invocation{
		RequestID:    GetRequestID(ctx),
		FunctionName: lambdacontext.FunctionName,
	}

	ctx, end := h.server.LoggerService.StartTransaction(ctx, name)

	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute("request.id", inv.RequestID)
		if inv.FunctionName != "" {
			txn.AddAttribute("aws.lambda.function_name", inv.FunctionName)
		}
	}

	builder := h.server.Logger.With().Str("request_id", inv.RequestID)
	if inv.FunctionName != "" {
		builder = builder.Str("function", inv.FunctionName)
	}
	base := builder.Logger()

	// ForContext adds trace.id/span.id when a transaction is running.
	invocationLogger := h.server.LoggerService.ForContext(ctx, base)

	return invocationLogger.WithContext(ctx), &invocationLogger, end
}
