package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/deppfellow/connect-case-creator/internal/config"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithServiceWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "staging"

	var buf bytes.Buffer
	ls, err := NewLoggerService(cfg, &buf)
	require.NoError(t, err)
	assert.Nil(t, ls.GetApplication())

	logger := NewLoggerWithService(cfg, ls)
	logger.Info().Str("case_name", "Refund request").Msg("validating case name")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, config.ServiceName, line["service"])
	assert.Equal(t, "staging", line["environment"])
	assert.Equal(t, "Refund request", line["case_name"])
	assert.Equal(t, "validating case name", line["message"])
}

func TestNewLoggerWithServiceLevel(t *testing.T) {
	testCases := []struct {
		name        string
		environment string
		level       string
		expectDebug bool
	}{
		{name: "production_defaults_to_info", environment: "production", expectDebug: false},
		{name: "development_defaults_to_debug", environment: "development", expectDebug: true},
		{name: "explicit_level_wins", environment: "development", level: "warn", expectDebug: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultObservabilityConfig()
			cfg.Environment = tc.environment
			cfg.Logging.Level = tc.level

			var buf bytes.Buffer
			ls, err := NewLoggerService(cfg, &buf)
			require.NoError(t, err)

			logger := NewLoggerWithService(cfg, ls)
			logger.Debug().Msg("debug line")

			assert.Equal(t, tc.expectDebug, buf.Len() > 0)
		})
	}
}

func TestLoggerRendersErrorStack(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	var buf bytes.Buffer
	ls, err := NewLoggerService(cfg, &buf)
	require.NoError(t, err)

	logger := NewLoggerWithService(cfg, ls)
	logger.Error().Stack().Err(pkgerrors.New("CreateCase failed")).Msg("error while creating case")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "CreateCase failed", line["error"])
	assert.Contains(t, line, "stack")
}

func TestDisabledServiceIsNoop(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	var buf bytes.Buffer
	ls, err := NewLoggerService(cfg, &buf)
	require.NoError(t, err)

	ctx := context.Background()
	txnCtx, end := ls.StartTransaction(ctx, "CreateCase")
	assert.Equal(t, ctx, txnCtx)
	end()

	base := NewLoggerWithService(cfg, ls)
	derived := ls.ForContext(txnCtx, base)
	derived.Info().Msg("same logger")
	assert.NotContains(t, buf.String(), "trace.id")

	// Neither call may panic without a transaction or application.
	NoticeError(txnCtx, pkgerrors.New("ignored"))
	ls.Shutdown(0)

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}
