package cases

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	"github.com/aws/aws-sdk-go-v2/service/connectcases/types"
	"github.com/aws/smithy-go"
	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCasesAPI struct {
	mock.Mock
}

func (m *mockCasesAPI) CreateCase(ctx context.Context, params *connectcases.CreateCaseInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateCaseOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*connectcases.CreateCaseOutput)
	return out, args.Error(1)
}

var testConnect = config.ConnectConfig{
	InstanceID:    "inst-123",
	DomainID:      "dom-456",
	TemplateID:    "tmpl-789",
	Region:        "us-east-1",
	DomainName:    "amazon-connect-acme",
	CustomerID:    "cust-001",
	AgentID:       "agent-002",
	CasesEndpoint: "vpce-0abc.cases.us-east-1.vpce.amazonaws.com",
}

func fieldValues(t *testing.T, fields []types.FieldValue) map[string]string {
	t.Helper()

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		member, ok := f.Value.(*types.FieldValueUnionMemberStringValue)
		require.True(t, ok, "field %s is not a string value", aws.ToString(f.Id))
		values[aws.ToString(f.Id)] = member.Value
	}
	return values
}

func TestBuildCreateCaseInput(t *testing.T) {
	input := BuildCreateCaseInput(testConnect, "Refund request", "123456789012")

	assert.Equal(t, "dom-456", aws.ToString(input.DomainId))
	assert.Equal(t, "tmpl-789", aws.ToString(input.TemplateId))
	assert.Nil(t, input.ClientToken)
	require.Len(t, input.Fields, 3)

	assert.Equal(t, map[string]string{
		FieldCustomerID:   "arn:aws:profile:us-east-1:123456789012:domains/amazon-connect-acme/profiles/cust-001",
		FieldTitle:        "Refund request",
		FieldAssignedUser: "arn:aws:connect:us-east-1:123456789012:instance/inst-123/agent/agent-002",
	}, fieldValues(t, input.Fields))
}

func TestCreateCase(t *testing.T) {
	api := &mockCasesAPI{}
	api.On("CreateCase", mock.Anything, mock.MatchedBy(func(in *connectcases.CreateCaseInput) bool {
		return aws.ToString(in.DomainId) == "dom-456" && len(in.Fields) == 3
	})).Return(&connectcases.CreateCaseOutput{
		CaseId:  aws.String("case-1"),
		CaseArn: aws.String("arn:aws:cases:us-east-1:123456789012:domain/dom-456/case/case-1"),
	}, nil).Once()

	client := NewClient(api, testConnect)
	result, err := client.CreateCase(context.Background(), "Refund request", "123456789012")

	require.NoError(t, err)
	assert.Equal(t, "case-1", result.CaseID)
	assert.Contains(t, result.CaseARN, "case/case-1")
	api.AssertExpectations(t)
}

func TestCreateCaseFailuresAreUniform(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "access_denied", err: &smithy.GenericAPIError{Code: "AccessDeniedException"}},
		{name: "throttling", err: &smithy.GenericAPIError{Code: "ThrottlingException"}},
		{name: "remote_validation", err: &smithy.GenericAPIError{Code: "ValidationException"}},
		{name: "network", err: errors.New("connection reset by peer")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := &mockCasesAPI{}
			api.On("CreateCase", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			client := NewClient(api, testConnect)
			result, err := client.CreateCase(context.Background(), "Refund request", "123456789012")

			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.err)

			var remoteErr *errs.RemoteCallError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, OpCreateCase, remoteErr.Op)
			api.AssertNumberOfCalls(t, "CreateCase", 1)
		})
	}
}
