// Package server defines the core Server struct that composes the function's main dependencies.
//
// It is built once per process, at cold start, and reused by every
// invocation the process serves.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the AWS SDK configuration
//   - the STS identity resolver (and its memoized account id)
//   - the Connect Cases client, pointed at the private endpoint
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/deppfellow/connect-case-creator/internal/lib/cases"
	"github.com/deppfellow/connect-case-creator/internal/lib/identity"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/connect-case-creator/internal/logger"
)

// Server is the process container that holds shared resources.
//
// It is not a network server: the Lambda runtime owns the transport.
type Server struct {
	// Config holds all environment/config values for the function.
	Config *config.Config

	// Logger is the function's base structured logger.
	// Invocations derive a child logger from it.
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	// If New Relic is disabled, this exists but holds a nil app.
	LoggerService *loggerPkg.LoggerService

	// AWS is the shared SDK configuration every client is built from.
	AWS aws.Config

	// Identity resolves and memoizes the caller's account id.
	Identity *identity.Resolver

	// Cases opens cases through the Connect Cases private endpoint.
	Cases *cases.Client
}

// New constructs a Server and initializes the AWS clients.
//
// Initialization performed:
//   - load the default AWS configuration in the configured region
//   - STS client for the identity resolver
//   - Connect Cases client with its base endpoint set to the private endpoint
//
// Retries are disabled on every client: each remote call is attempted once.
// No network call happens here; credentials are resolved lazily.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Connect.Region),
		awsconfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws configuration: %w", err)
	}

	stsClient := sts.NewFromConfig(awsCfg)

	// The Cases API is only reachable through the VPC interface endpoint.
	casesClient := connectcases.NewFromConfig(awsCfg, func(o *connectcases.Options) {
		o.BaseEndpoint = aws.String(cfg.Connect.CasesEndpointURL())
	})

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		AWS:           awsCfg,
		Identity:      identity.NewResolver(stsClient),
		Cases:         cases.NewClient(casesClient, cfg.Connect),
	}

	logger.Debug().
		Str("region", cfg.Connect.Region).
		Str("cases_endpoint", cfg.Connect.CasesEndpointURL()).
		Msg("aws clients initialized")

	return server, nil
}

// Shutdown flushes telemetry still buffered by the New Relic agent.
//
// The Lambda runtime freezes the process without notice, so this only
// matters for the local invoke tool.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := 10 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	s.LoggerService.Shutdown(timeout)

	return nil
}
