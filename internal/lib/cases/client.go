// Package cases provides the Amazon Connect Cases client used to open cases.
//
// It builds the CreateCase request from configuration and the resolved
// account id, and issues it exactly once against the private Cases endpoint.
package cases

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// OpCreateCase names the remote call in errors and logs.
const OpCreateCase = "connectcases:CreateCase"

// CreateCaseAPI is the subset of the Connect Cases client the Client needs.
type CreateCaseAPI interface {
	CreateCase(ctx context.Context, params *connectcases.CreateCaseInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateCaseOutput, error)
}

// Client wraps the Connect Cases API and the settings every case shares.
type Client struct {
	api CreateCaseAPI
	cfg config.ConnectConfig
}

// Result is what the Cases service returned for a created case.
type Result struct {
	CaseID  string
	CaseARN string
}

// NewClient creates a Client issuing requests through api.
func NewClient(api CreateCaseAPI, cfg config.ConnectConfig) *Client {
	return &Client{api: api, cfg: cfg}
}

// CreateCase opens a case titled caseName, owned by the configured customer
// profile and assigned to the configured agent.
//
// Exactly one CreateCase call is issued. Any failure is returned as a
// *errs.RemoteCallError, whatever its cause.
func (c *Client) CreateCase(ctx context.Context, caseName, accountID string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	input := BuildCreateCaseInput(c.cfg, caseName, accountID)

	out, err := c.api.CreateCase(ctx, input)
	if err != nil {
		logger.Error().
			Err(err).
			Str("operation", OpCreateCase).
			Str("aws_error_code", errs.APIErrorCode(err)).
			Msg("error while creating case")

		return nil, errors.WithStack(errs.NewRemoteCallError(OpCreateCase, err))
	}

	result := &Result{
		CaseID:  aws.ToString(out.CaseId),
		CaseARN: aws.ToString(out.CaseArn),
	}

	logger.Info().
		Str("case_id", result.CaseID).
		Str("case_arn", result.CaseARN).
		Msg("case created")

	return result, nil
}
