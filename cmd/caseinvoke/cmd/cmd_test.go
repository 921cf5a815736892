package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEventFromStdin(t *testing.T) {
	event, err := readEvent(strings.NewReader(`{"name":"Refund request","priority":"high"}`), "-")
	require.NoError(t, err)

	assert.Equal(t, "Refund request", event.Name)
	assert.JSONEq(t, `{"name":"Refund request","priority":"high"}`, string(event.Payload))
	assert.NoError(t, event.Validate())
}

func TestReadEventFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Damaged parcel"}`), 0o600))

	event, err := readEvent(strings.NewReader(""), path)
	require.NoError(t, err)

	assert.Equal(t, "Damaged parcel", event.Name)
}

func TestReadEventErrors(t *testing.T) {
	_, err := readEvent(strings.NewReader("not json"), "-")
	assert.ErrorContains(t, err, "failed to decode event")

	_, err = readEvent(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open event file")
}

func TestCheckConfigReportsMissing(t *testing.T) {
	for _, k := range []string{
		"INSTANCE_ID", "DOMAIN_ID", "TEMPLATE_ID", "AWS_REGION",
		"DOMAIN_NAME", "CUSTOMER_ID", "AGENT_ID", "CASES_ENDPOINT_DNSNAMES",
		"LOG_LEVEL", "LOG_FORMAT", "NEW_RELIC_ENABLED",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("APP_ENV", "production")
	t.Setenv("INSTANCE_ID", "inst-123")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"check-config"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := Execute()
	require.Error(t, err)

	assert.Contains(t, out.String(), "missing: DOMAIN_ID\n")
	assert.Contains(t, out.String(), "missing: CASES_ENDPOINT_DNSNAMES\n")
	assert.NotContains(t, out.String(), "missing: INSTANCE_ID")
}

func TestCheckConfigOK(t *testing.T) {
	env := map[string]string{
		"APP_ENV":                 "staging",
		"INSTANCE_ID":             "inst-123",
		"DOMAIN_ID":               "dom-456",
		"TEMPLATE_ID":             "tmpl-789",
		"AWS_REGION":              "eu-west-2",
		"DOMAIN_NAME":             "amazon-connect-acme",
		"CUSTOMER_ID":             "cust-001",
		"AGENT_ID":                "agent-002",
		"CASES_ENDPOINT_DNSNAMES": "vpce-0abc.cases.eu-west-2.vpce.amazonaws.com",
		"LOG_LEVEL":               "",
		"LOG_FORMAT":              "",
		"NEW_RELIC_ENABLED":       "",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check-config"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, Execute())
	assert.Equal(t, "configuration OK (env=staging, region=eu-west-2)\n", out.String())
}
