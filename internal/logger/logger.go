// Package logger configure the function's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument invocations, forwarding logs,
// errors, and traces for debugging
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// LoggerService owns the log destination and, when enabled, the New Relic
// application the function reports to.
//
// A disabled service (New Relic off) is fully usable: every method degrades
// to plain zerolog output.
type LoggerService struct {
	out   io.Writer
	nrApp *newrelic.Application

	// nrWriter decorates log lines with New Relic linking metadata.
	// Only set when log forwarding is enabled.
	nrWriter *zerologWriter.ZerologWriter
}

// NewLoggerService creates the service writing to out (os.Stdout when nil).
//
// If New Relic is enabled in cfg, the agent application is created here.
func NewLoggerService(cfg *config.ObservabilityConfig, out io.Writer) (*LoggerService, error) {
	if out == nil {
		out = os.Stdout
	}

	service := &LoggerService{out: out}

	if !cfg.NewRelic.Enabled {
		return service, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"environment": cfg.Environment}
		},
	}

	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(out))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create new relic application")
	}

	service.nrApp = app

	if cfg.NewRelic.AppLogForwardingEnabled {
		writer := zerologWriter.New(out, app)
		service.nrWriter = &writer
	}

	return service, nil
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// StartTransaction starts a New Relic transaction named name and stores it
// in the returned context. The returned func ends it.
//
// Without New Relic, ctx is returned unchanged and the end func is a no-op.
func (ls *LoggerService) StartTransaction(ctx context.Context, name string) (context.Context, func()) {
	app := ls.GetApplication()
	if app == nil {
		return ctx, func() {}
	}

	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}

// Shutdown flushes pending telemetry, waiting at most timeout.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if app := ls.GetApplication(); app != nil {
		app.Shutdown(timeout)
	}
}

// NewLoggerWithService builds the base logger for the process.
//
// Output format follows cfg.Logging.Format ("json" for CloudWatch,
// "console" for local runs) and the level follows cfg.GetLogLevel().
func NewLoggerWithService(cfg *config.ObservabilityConfig, ls *LoggerService) zerolog.Logger {
	// Let .Stack() on events render pkg/errors stack traces.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stdout
	if ls != nil {
		w = ls.out
		if ls.nrWriter != nil {
			w = ls.nrWriter
		}
	}

	if cfg.Logging.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

// ForContext derives the logger for one invocation.
//
// When a New Relic transaction lives in ctx, the logger gains trace.id and
// span.id fields, and forwarded lines are linked to the transaction.
func (ls *LoggerService) ForContext(ctx context.Context, base zerolog.Logger) zerolog.Logger {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return base
	}

	if ls != nil && ls.nrWriter != nil {
		base = base.Output(ls.nrWriter.WithContext(ctx))
	}

	return WithTraceContext(base, txn)
}

// WithTraceContext adds New Relic trace identifiers to logger.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	metadata := txn.GetTraceMetadata()

	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}

// NoticeError reports err on the transaction stored in ctx, if any.
//
// nrpkgerrors.Wrap keeps the pkg/errors stack trace and error class.
func NoticeError(ctx context.Context, err error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.NoticeError(nrpkgerrors.Wrap(err))
	}
}
