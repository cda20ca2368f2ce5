package policy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildDocument_ScopedToSingleARN verifies the rendered document allows
// all provider actions on exactly the given ARN and nothing else.
func TestBuildDocument_ScopedToSingleARN(t *testing.T) {
	svc := NewService()
	arn := "arn:aws:lightsail:us-east-1:123456789012:Instance/abc-def"

	raw, err := svc.BuildDocument(arn)
	require.NoError(t, err)

	var doc struct {
		Version   string `json:"Version"`
		Statement []struct {
			Effect   string   `json:"Effect"`
			Action   []string `json:"Action"`
			Resource string   `json:"Resource"`
		} `json:"Statement"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2012-10-17", doc.Version)
	require.Len(t, doc.Statement, 1)
	assert.Equal(t, "Allow", doc.Statement[0].Effect)
	assert.Equal(t, []string{"lightsail:*"}, doc.Statement[0].Action)
	assert.Equal(t, arn, doc.Statement[0].Resource)
	assert.NotEqual(t, "*", doc.Statement[0].Resource)
}

// TestBuildDocument_NotReused verifies two ARNs produce independent
// documents, each referencing only its own ARN.
func TestBuildDocument_NotReused(t *testing.T) {
	svc := NewService()

	first, err := svc.BuildDocument("arn:aws:lightsail:us-east-1:123:Instance/one")
	require.NoError(t, err)
	second, err := svc.BuildDocument("arn:aws:lightsail:us-east-1:123:Instance/two")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "Instance/one")
	assert.NotContains(t, first, "Instance/two")
}

func TestUserPolicyName(t *testing.T) {
	assert.Equal(t, "lfr-bob-access", NewService().UserPolicyName("bob"))
}

func TestGroupPolicyARN(t *testing.T) {
	assert.Equal(t,
		"arn:aws:iam::123456789012:policy/lfr-student-access",
		NewService().GroupPolicyARN("123456789012"))
}
