// Package config manages environment variables.
//
// It reads the settings the case creator needs from the process
// environment (and from a `.env` file when running locally),
// loads them into structured Go types, and validates that every
// required value is present before any request is handled.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map fixed env var names into a structured Go config.
//   - Report every missing required variable at once.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"reflect"
	"slices"
	"strings"

	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into the process env
	// before the env provider reads it. Lambda deployments have none.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

/*
	The Lambda runtime hands us a flat set of env vars with fixed names
	(INSTANCE_ID, DOMAIN_ID, ...), so there is no prefix to strip. Instead
	envKeys maps each known variable onto a koanf key path, and anything
	else in the environment is ignored.

	e.g. DOMAIN_ID -> connect.domain_id -> Config.Connect.DomainID
*/

// Config is the root configuration object for the function.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `env:"..."` tags name the environment variable behind each field so
// validation errors can be reported by variable name.
//
// Observability is a pointer because it is optional. If not provided,
// we inject defaults at load time.
type Config struct {
	Primary       Primary              `koanf:"primary"`
	Connect       ConnectConfig        `koanf:"connect"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	// Env is optional; blank means "production".
	Env string `koanf:"env" env:"APP_ENV"`
}

// ConnectConfig groups the Amazon Connect settings used to build every
// CreateCase request.
type ConnectConfig struct {
	InstanceID string `koanf:"instance_id" env:"INSTANCE_ID" validate:"required"`
	DomainID   string `koanf:"domain_id" env:"DOMAIN_ID" validate:"required"`
	TemplateID string `koanf:"template_id" env:"TEMPLATE_ID" validate:"required"`
	Region     string `koanf:"region" env:"AWS_REGION" validate:"required"`
	DomainName string `koanf:"domain_name" env:"DOMAIN_NAME" validate:"required"`
	CustomerID string `koanf:"customer_id" env:"CUSTOMER_ID" validate:"required"`
	AgentID    string `koanf:"agent_id" env:"AGENT_ID" validate:"required"`

	// CasesEndpoint is the DNS name of the Connect Cases VPC interface endpoint,
	// without scheme.
	CasesEndpoint string `koanf:"cases_endpoint" env:"CASES_ENDPOINT_DNSNAMES" validate:"required"`
}

// CasesEndpointURL returns the base URL the Connect Cases client talks to.
func (c ConnectConfig) CasesEndpointURL() string {
	return "https://" + c.CasesEndpoint
}

// RequiredEnvVars returns the variables that must be non-empty, in the order
// they are reported when missing.
//
// It is read off the `required` fields of ConnectConfig, so field order is
// the single source of that order.
func RequiredEnvVars() []string {
	var names []string

	t := reflect.TypeOf(ConnectConfig{})
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if slices.Contains(strings.Split(fld.Tag.Get("validate"), ","), "required") {
			names = append(names, fld.Tag.Get("env"))
		}
	}

	return names
}

// envKeys maps every environment variable we read onto its koanf key path.
var envKeys = map[string]string{
	"APP_ENV": "primary.env",

	"INSTANCE_ID":             "connect.instance_id",
	"DOMAIN_ID":               "connect.domain_id",
	"TEMPLATE_ID":             "connect.template_id",
	"AWS_REGION":              "connect.region",
	"DOMAIN_NAME":             "connect.domain_name",
	"CUSTOMER_ID":             "connect.customer_id",
	"AGENT_ID":                "connect.agent_id",
	"CASES_ENDPOINT_DNSNAMES": "connect.cases_endpoint",

	"LOG_LEVEL":  "observability.logging.level",
	"LOG_FORMAT": "observability.logging.format",

	"NEW_RELIC_ENABLED":                     "observability.new_relic.enabled",
	"NEW_RELIC_APP_NAME":                    "observability.new_relic.app_name",
	"NEW_RELIC_LICENSE_KEY":                 "observability.new_relic.license_key",
	"NEW_RELIC_APP_LOG_FORWARDING_ENABLED":  "observability.new_relic.app_log_forwarding_enabled",
	"NEW_RELIC_DISTRIBUTED_TRACING_ENABLED": "observability.new_relic.distributed_tracing_enabled",
	"NEW_RELIC_DEBUG_LOGGING":               "observability.new_relic.debug_logging",
}

// DefaultConfig returns a Config holding only defaults.
//
// Values from the environment are unmarshalled on top of it, so every
// field not set in the environment keeps its default.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "production",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// validate is shared: validator caches struct metadata per instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their env var name instead of the Go field name,
	// so a missing DomainID shows up as "DOMAIN_ID".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("env")
	})

	return v
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config on top of the defaults, and validates it.
//
// The returned Config is non-nil whenever the environment could be read, even
// if validation failed, so callers can still report what was loaded. A
// validation failure is a *errs.ConfigurationError naming every missing
// variable.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Load environment variables into koanf.
	//
	// The key-mapping func returns "" for variables we don't know, which
	// tells the provider to skip them.
	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := DefaultConfig()

	// Unmarshal reads the flat key-value store from koanf and fills mainConfig.
	// Fields without a matching key keep the defaults set above.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Validate(); err != nil {
		return mainConfig, err
	}

	return mainConfig, nil
}

// applyDefaults fills blanks left by a partially provided environment and
// forces values that are not meant to be configured.
func (c *Config) applyDefaults() {
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	if c.Primary.Env == "" {
		c.Primary.Env = DefaultConfig().Primary.Env
	}

	defaults := DefaultObservabilityConfig()
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = defaults.Logging.Format
	}
	if c.Observability.NewRelic.AppName == "" {
		c.Observability.NewRelic.AppName = defaults.NewRelic.AppName
	}

	// ServiceName is fixed, Environment always follows APP_ENV.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
}

// Validate checks the configuration contract.
//
// It returns nil when the configuration is usable, or a *errs.ConfigurationError
// with Missing listing every empty required variable (in declaration order)
// and Err describing any other invalid value.
func (c *Config) Validate() error {
	cfgErr := &errs.ConfigurationError{}
	var problems []string

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return &errs.ConfigurationError{Err: err}
		}

		for _, fe := range validationErrors {
			if fe.Tag() == "required" {
				cfgErr.Missing = append(cfgErr.Missing, fe.Field())
				continue
			}

			problems = append(problems, fe.Field()+": "+fe.Tag())
		}
	}

	if c.Observability != nil {
		if err := c.Observability.Validate(); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) > 0 {
		cfgErr.Err = errors.New(strings.Join(problems, "; "))
	}

	if len(cfgErr.Missing) == 0 && cfgErr.Err == nil {
		return nil
	}

	return cfgErr
}
