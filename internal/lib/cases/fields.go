package cases

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	"github.com/aws/aws-sdk-go-v2/service/connectcases/types"
	"github.com/deppfellow/connect-case-creator/internal/config"
)

// Field ids of the case template.
const (
	FieldCustomerID   = "customer_id"
	FieldTitle        = "title"
	FieldAssignedUser = "assigned_user"
)

// CustomerProfileARN returns the Customer Profiles ARN of the configured customer.
func CustomerProfileARN(cfg config.ConnectConfig, accountID string) string {
	return fmt.Sprintf("arn:aws:profile:%s:%s:domains/%s/profiles/%s",
		cfg.Region, accountID, cfg.DomainName, cfg.CustomerID)
}

// AgentARN returns the ARN of the configured agent in the Connect instance.
func AgentARN(cfg config.ConnectConfig, accountID string) string {
	return fmt.Sprintf("arn:aws:connect:%s:%s:instance/%s/agent/%s",
		cfg.Region, accountID, cfg.InstanceID, cfg.AgentID)
}

// BuildCreateCaseInput assembles the CreateCase request for caseName.
//
// ClientToken is left unset.
func BuildCreateCaseInput(cfg config.ConnectConfig, caseName, accountID string) *connectcases.CreateCaseInput {
	return &connectcases.CreateCaseInput{
		DomainId:   aws.String(cfg.DomainID),
		TemplateId: aws.String(cfg.TemplateID),
		Fields: []types.FieldValue{
			stringField(FieldCustomerID, CustomerProfileARN(cfg, accountID)),
			stringField(FieldTitle, caseName),
			stringField(FieldAssignedUser, AgentARN(cfg, accountID)),
		},
	}
}

func stringField(id, value string) types.FieldValue {
	return types.FieldValue{
		Id:    aws.String(id),
		Value: &types.FieldValueUnionMemberStringValue{Value: value},
	}
}
