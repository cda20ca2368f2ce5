package policy

import (
	"encoding/json"
	"fmt"
)

const policyVersion = "2012-10-17"

type statement struct {
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource string   `json:"Resource"`
}

type document struct {
	Version   string      `json:"Version"`
	Statement []statement `json:"Statement"`
}

func NewService() *service {
	return &service{}
}

// BuildDocument renders a single-statement policy scoped to exactly one
// instance ARN. Callers regenerate per instance; a document is never shared
// across instances and never widened to a wildcard resource.
func (s *service) BuildDocument(instanceARN string) (string, error) {
	doc := document{
		Version: policyVersion,
		Statement: []statement{
			{
				Effect:   "Allow",
				Action:   []string{"lightsail:*"},
				Resource: instanceARN,
			},
		},
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal policy document: %w", err)
	}

	return string(raw), nil
}

// UserPolicyName is the inline policy name attached to each account.
func (s *service) UserPolicyName(user string) string {
	return fmt.Sprintf("lfr-%s-access", user)
}

// GroupPolicyARN is the shared managed policy every group carries.
func (s *service) GroupPolicyARN(accountID string) string {
	return fmt.Sprintf("arn:aws:iam::%s:policy/lfr-student-access", accountID)
}
