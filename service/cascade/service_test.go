package cascade

import (
	"context"
	"errors"
	"testing"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInstances struct {
	log       *[]string
	deleteErr error
}

func (f *fakeInstances) Create(ctx context.Context, cfg model.InstanceConfig) (*model.InstanceDetails, error) {
	return nil, errors.New("not used")
}

func (f *fakeInstances) Delete(ctx context.Context, name string) error {
	*f.log = append(*f.log, "delete-instance:"+name)
	return f.deleteErr
}

func (f *fakeInstances) DeleteForUser(ctx context.Context, user string) (*model.CascadeReport, error) {
	*f.log = append(*f.log, "delete-instances-for:"+user)
	report := &model.CascadeReport{}
	report.Record("delete instance", user+"-std-small", nil)
	return report, nil
}

type fakeIdentities struct {
	log *[]string
}

func (f *fakeIdentities) Create(ctx context.Context, cfg model.IamConfig) (*model.Credentials, error) {
	return nil, errors.New("not used")
}

func (f *fakeIdentities) Delete(ctx context.Context, user, group string) *model.CascadeReport {
	*f.log = append(*f.log, "delete-identity:"+user+":"+group)
	report := &model.CascadeReport{}
	report.Record("delete user", user, nil)
	return report
}

func (f *fakeIdentities) CreateGroup(ctx context.Context, group string) error {
	return errors.New("not used")
}

func (f *fakeIdentities) DeleteGroup(ctx context.Context, group string) (*model.CascadeReport, error) {
	*f.log = append(*f.log, "delete-group:"+group)
	report := &model.CascadeReport{}
	report.Record("delete group", group, nil)
	return report, nil
}

func newTestService() (*service, *[]string) {
	log := &[]string{}
	return NewService(&fakeInstances{log: log}, &fakeIdentities{log: log}), log
}

func TestTeardown_InstanceOnly(t *testing.T) {
	svc, log := newTestService()

	report, err := svc.Teardown(context.Background(), model.DeleteTarget{Instance: "bob-std-medium"})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete-instance:bob-std-medium"}, *log)
	assert.True(t, report.Clean())
}

// TestTeardown_UserAndGroup verifies the user shape removes the user's
// instances first, then the identity, and merges both reports.
func TestTeardown_UserAndGroup(t *testing.T) {
	svc, log := newTestService()

	report, err := svc.Teardown(context.Background(), model.DeleteTarget{User: "alice", Group: "students"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"delete-instances-for:alice",
		"delete-identity:alice:students",
	}, *log)
	assert.Len(t, report.Succeeded, 2)
}

func TestTeardown_GroupOnly(t *testing.T) {
	svc, log := newTestService()

	report, err := svc.Teardown(context.Background(), model.DeleteTarget{Group: "students"})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete-group:students"}, *log)
	assert.True(t, report.Clean())
}

// TestTeardown_UsageErrors verifies missing or contradictory targets are
// reported without a single provider call.
func TestTeardown_UsageErrors(t *testing.T) {
	t.Run("no target", func(t *testing.T) {
		svc, log := newTestService()

		report, err := svc.Teardown(context.Background(), model.DeleteTarget{})
		require.ErrorIs(t, err, model.ErrNoTarget)
		assert.Nil(t, report)
		assert.Empty(t, *log)
	})

	t.Run("user without group", func(t *testing.T) {
		svc, log := newTestService()

		report, err := svc.Teardown(context.Background(), model.DeleteTarget{User: "alice"})
		require.ErrorIs(t, err, model.ErrUserWithoutGroup)
		assert.Nil(t, report)
		assert.Empty(t, *log)
	})
}

// TestTeardown_InstanceTakesPrecedence documents the dispatch order when an
// operator passes more than one shape: the narrowest target wins.
func TestTeardown_InstanceTakesPrecedence(t *testing.T) {
	svc, log := newTestService()

	_, err := svc.Teardown(context.Background(), model.DeleteTarget{
		Instance: "bob-std-medium",
		Group:    "students",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"delete-instance:bob-std-medium"}, *log)
}

func TestTeardown_InstanceFailureInReport(t *testing.T) {
	log := &[]string{}
	svc := NewService(&fakeInstances{log: log, deleteErr: errors.New("in use")}, &fakeIdentities{log: log})

	report, err := svc.Teardown(context.Background(), model.DeleteTarget{Instance: "bob-std-medium"})
	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "bob-std-medium", report.Failed[0].Resource)
}
