// Package identity resolves the AWS account the function runs in.
//
// The account id is needed to build the profile and agent ARNs of every
// case. It is looked up once per process with sts:GetCallerIdentity and
// reused by every later invocation served by the same process.
package identity

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// OpGetCallerIdentity names the remote call in errors and logs.
const OpGetCallerIdentity = "sts:GetCallerIdentity"

// CallerIdentityAPI is the subset of the STS client the resolver needs.
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Resolver memoizes the caller's account id for the lifetime of the process.
//
// There is no expiry and no invalidation. A failed lookup is not cached, so
// the next invocation performs a fresh lookup.
type Resolver struct {
	api CallerIdentityAPI

	mu        sync.Mutex
	accountID string
}

// NewResolver creates a Resolver backed by api.
func NewResolver(api CallerIdentityAPI) *Resolver {
	return &Resolver{api: api}
}

// AccountID returns the caller's account id.
//
// The first successful call performs the remote lookup; later calls return
// the memoized value without touching the network. Failures are returned as
// *errs.RemoteCallError and are not retried.
func (r *Resolver) AccountID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := zerolog.Ctx(ctx)

	if r.accountID != "" {
		logger.Debug().Str("account_id", r.accountID).Msg("using cached account id")
		return r.accountID, nil
	}

	out, err := r.api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("operation", OpGetCallerIdentity).
			Str("aws_error_code", errs.APIErrorCode(err)).
			Msg("failed to resolve caller identity")

		return "", errors.WithStack(errs.NewRemoteCallError(OpGetCallerIdentity, err))
	}

	account := aws.ToString(out.Account)
	if account == "" {
		return "", errors.WithStack(errs.NewRemoteCallError(OpGetCallerIdentity, errors.New("response has no account")))
	}

	r.accountID = account
	logger.Debug().Str("account_id", account).Msg("resolved account id")

	return account, nil
}
