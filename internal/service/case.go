package service

import (
	"context"

	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/deppfellow/connect-case-creator/internal/lib/cases"
	"github.com/deppfellow/connect-case-creator/internal/validation"
	"github.com/rs/zerolog"
)

// CaseRequest is a decoded request carrying the name of the case to open.
type CaseRequest interface {
	validation.Validatable
	CaseName() string
}

// AccountResolver returns the account id cases are created in.
type AccountResolver interface {
	AccountID(ctx context.Context) (string, error)
}

// CaseCreator opens a case in Connect Cases.
type CaseCreator interface {
	CreateCase(ctx context.Context, caseName, accountID string) (*cases.Result, error)
}

// Outcome is the result of one case creation attempt.
//
// Exactly one of Case and Err is set. Kind tells failures apart without
// inspecting error messages.
type Outcome struct {
	// Case is the created case; nil on failure.
	Case *cases.Result

	// AccountID is the account the case was created in, when it was resolved.
	AccountID string

	// Err is the failure, classified by errs.KindOf.
	Err error
}

// Succeeded reports whether the case was created.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Kind returns the failure kind, or "" on success.
func (o Outcome) Kind() errs.Kind {
	return errs.KindOf(o.Err)
}

// CaseService runs the create-case flow: validate, resolve identity, create.
type CaseService struct {
	identity AccountResolver
	cases    CaseCreator
}

// NewCaseService creates a CaseService.
func NewCaseService(identity AccountResolver, cases CaseCreator) *CaseService {
	return &CaseService{
		identity: identity,
		cases:    cases,
	}
}

// CreateCase validates req and, if it is acceptable, opens a case.
//
// Each step runs only if the previous one succeeded, so an invalid name never
// reaches the identity lookup or the Cases API.
func (s *CaseService) CreateCase(ctx context.Context, req CaseRequest) Outcome {
	logger := zerolog.Ctx(ctx)

	caseName := req.CaseName()
	logger.Info().Str("case_name", caseName).Msg("case name received")

	if err := req.Validate(); err != nil {
		return Outcome{Err: err}
	}

	accountID, err := s.identity.AccountID(ctx)
	if err != nil {
		return Outcome{Err: err}
	}

	logger.Info().Str("account_id", accountID).Msg("account id resolved")

	result, err := s.cases.CreateCase(ctx, caseName, accountID)
	if err != nil {
		return Outcome{AccountID: accountID, Err: err}
	}

	return Outcome{Case: result, AccountID: accountID}
}
