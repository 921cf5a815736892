// Package main is the entry point for the case creator Lambda function.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/deppfellow/connect-case-creator/internal/handler"
	"github.com/deppfellow/connect-case-creator/internal/logger"
	"github.com/deppfellow/connect-case-creator/internal/server"
	"github.com/deppfellow/connect-case-creator/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	// Configuration is checked once at cold start. A missing variable stops
	// the process before the runtime hands it any event.
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stdout).With().Timestamp().Str("service", config.ServiceName).Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability, os.Stdout)
	if err != nil {
		bootLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to initialize new relic")
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(context.Background(), cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services, err := service.NewService(srv)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	handlers := handler.NewHandlers(srv, services)

	log.Info().Str("env", cfg.Primary.Env).Msg("function initialized")

	lambda.Start(handlers.Case.Handle)
}
