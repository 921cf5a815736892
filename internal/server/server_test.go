package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/deppfellow/connect-case-creator/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Connect = config.ConnectConfig{
		InstanceID:    "inst-123",
		DomainID:      "dom-456",
		TemplateID:    "tmpl-789",
		Region:        "ap-southeast-2",
		DomainName:    "amazon-connect-acme",
		CustomerID:    "cust-001",
		AgentID:       "agent-002",
		CasesEndpoint: "vpce-0abc.cases.ap-southeast-2.vpce.amazonaws.com",
	}
	return cfg
}

// isolateAWS points the SDK at static credentials and empty shared files.
func isolateAWS(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	t.Setenv("AWS_CONFIG_FILE", empty)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", empty)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY")
}

func TestNew(t *testing.T) {
	isolateAWS(t)

	cfg := testConfig()
	loggerService, err := logger.NewLoggerService(cfg.Observability, nil)
	require.NoError(t, err)
	log := zerolog.Nop()

	s, err := New(context.Background(), cfg, &log, loggerService)
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", s.AWS.Region)
	assert.IsType(t, aws.NopRetryer{}, s.AWS.Retryer())
	assert.NotNil(t, s.Identity)
	assert.NotNil(t, s.Cases)
	assert.Same(t, cfg, s.Config)
	assert.Nil(t, s.LoggerService.GetApplication())
}

func TestShutdownWithoutNewRelic(t *testing.T) {
	isolateAWS(t)

	cfg := testConfig()
	log := zerolog.Nop()

	s, err := New(context.Background(), cfg, &log, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, s.Shutdown(ctx))
}
