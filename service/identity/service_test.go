package identity

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentityAPI struct {
	log *[]string

	createUserErr error
	addToGroupErr error
	stepErrs      map[string]error

	members    []string
	membersErr error

	putDocuments map[string]string
}

func (f *fakeIdentityAPI) record(format string, args ...any) {
	*f.log = append(*f.log, fmt.Sprintf(format, args...))
}

func (f *fakeIdentityAPI) CreateUser(ctx context.Context, user string) error {
	f.record("create-user:%s", user)
	return f.createUserErr
}

func (f *fakeIdentityAPI) GetUser(ctx context.Context, user string) (*model.UserDetails, error) {
	f.record("get-user:%s", user)
	return &model.UserDetails{UserName: user, ARN: "arn:aws:iam:::user/" + user}, nil
}

func (f *fakeIdentityAPI) DeleteUser(ctx context.Context, user string) error {
	f.record("delete-user:%s", user)
	return f.stepErrs["delete-user"]
}

func (f *fakeIdentityAPI) CreateGroup(ctx context.Context, group string) error {
	f.record("create-group:%s", group)
	return f.stepErrs["create-group"]
}

func (f *fakeIdentityAPI) DeleteGroup(ctx context.Context, group string) error {
	f.record("delete-group:%s", group)
	return f.stepErrs["delete-group"]
}

func (f *fakeIdentityAPI) GetGroupMembers(ctx context.Context, group string) ([]string, error) {
	f.record("get-group:%s", group)
	return f.members, f.membersErr
}

func (f *fakeIdentityAPI) AddUserToGroup(ctx context.Context, user, group string) error {
	f.record("add-to-group:%s:%s", user, group)
	return f.addToGroupErr
}

func (f *fakeIdentityAPI) RemoveUserFromGroup(ctx context.Context, user, group string) error {
	f.record("remove-from-group:%s:%s", user, group)
	return f.stepErrs["remove-from-group"]
}

func (f *fakeIdentityAPI) CreateLoginProfile(ctx context.Context, user, password string, resetRequired bool) error {
	f.record("create-login-profile:%s:reset=%t", user, resetRequired)
	return f.stepErrs["create-login-profile"]
}

func (f *fakeIdentityAPI) DeleteLoginProfile(ctx context.Context, user string) error {
	f.record("delete-login-profile:%s", user)
	return f.stepErrs["delete-login-profile"]
}

func (f *fakeIdentityAPI) PutUserPolicy(ctx context.Context, user, policyName, document string) error {
	f.record("put-user-policy:%s:%s", user, policyName)
	if f.putDocuments == nil {
		f.putDocuments = map[string]string{}
	}
	f.putDocuments[policyName] = document
	return f.stepErrs["put-user-policy"]
}

func (f *fakeIdentityAPI) DeleteUserPolicy(ctx context.Context, user, policyName string) error {
	f.record("delete-user-policy:%s:%s", user, policyName)
	return f.stepErrs["delete-user-policy"]
}

func (f *fakeIdentityAPI) AttachGroupPolicy(ctx context.Context, group, policyARN string) error {
	f.record("attach-group-policy:%s:%s", group, policyARN)
	return f.stepErrs["attach-group-policy"]
}

func (f *fakeIdentityAPI) DetachGroupPolicy(ctx context.Context, group, policyARN string) error {
	f.record("detach-group-policy:%s:%s", group, policyARN)
	return f.stepErrs["detach-group-policy"]
}

type fakeSecrets struct {
	lengths *[]int64
}

func (f *fakeSecrets) GetRandomPassword(ctx context.Context, length int64) (string, error) {
	*f.lengths = append(*f.lengths, length)
	return "xK3!pq9Z"[:length], nil
}

type fakeInstances struct {
	log     *[]string
	reports map[string]*model.CascadeReport
}

func (f *fakeInstances) Create(ctx context.Context, cfg model.InstanceConfig) (*model.InstanceDetails, error) {
	return nil, errors.New("not used")
}

func (f *fakeInstances) Delete(ctx context.Context, name string) error {
	*f.log = append(*f.log, "delete-instance:"+name)
	return nil
}

func (f *fakeInstances) DeleteForUser(ctx context.Context, user string) (*model.CascadeReport, error) {
	*f.log = append(*f.log, "delete-instances-for:"+user)
	if report, ok := f.reports[user]; ok {
		return report, nil
	}
	return &model.CascadeReport{}, nil
}

type testHarness struct {
	svc       *lifecycleService
	api       *fakeIdentityAPI
	instances *fakeInstances
	lengths   *[]int64
	log       *[]string
}

func newTestHarness() *testHarness {
	log := &[]string{}
	lengths := &[]int64{}
	api := &fakeIdentityAPI{log: log, stepErrs: map[string]error{}}
	instances := &fakeInstances{log: log}
	svc := NewService(api, &fakeSecrets{lengths: lengths}, instances, policy.NewService(), "123456789012")
	return &testHarness{svc: svc, api: api, instances: instances, lengths: lengths, log: log}
}

// TestCreate_FullFlow verifies step ordering, the 8-character one-time
// password, the reset-required login profile and the instance-scoped inline
// policy.
func TestCreate_FullFlow(t *testing.T) {
	h := newTestHarness()
	arn := "arn:aws:lightsail:us-east-1:123456789012:Instance/bob-std-medium"

	credentials, err := h.svc.Create(context.Background(), model.IamConfig{
		User:  "bob",
		Group: "students",
		ARN:   arn,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"create-user:bob",
		"add-to-group:bob:students",
		"create-login-profile:bob:reset=true",
		"put-user-policy:bob:lfr-bob-access",
		"get-user:bob",
	}, *h.log)

	assert.Equal(t, []int64{8}, *h.lengths)
	assert.Len(t, credentials.OneTimePassword, 8)
	assert.Equal(t, "bob", credentials.Details.UserName)

	document := h.api.putDocuments["lfr-bob-access"]
	assert.Contains(t, document, arn)
	assert.NotContains(t, document, `"Resource":"*"`)
}

// TestCreate_UserCreationIsFatal verifies a failed account creation stops the
// flow before any other identity call. Duplicate users surface the provider
// error the same way.
func TestCreate_UserCreationIsFatal(t *testing.T) {
	h := newTestHarness()
	h.api.createUserErr = errors.New("EntityAlreadyExists")

	credentials, err := h.svc.Create(context.Background(), model.IamConfig{User: "bob", Group: "students"})
	require.Error(t, err)
	assert.Nil(t, credentials)

	var creationErr *model.CreationError
	require.ErrorAs(t, err, &creationErr)
	assert.Equal(t, "user", creationErr.Resource)

	assert.Equal(t, []string{"create-user:bob"}, *h.log)
}

// TestCreate_LaterStepFailureEscalates verifies steps after account creation
// return errors instead of silently continuing.
func TestCreate_LaterStepFailureEscalates(t *testing.T) {
	h := newTestHarness()
	h.api.addToGroupErr = errors.New("NoSuchEntity: group missing")

	_, err := h.svc.Create(context.Background(), model.IamConfig{User: "bob", Group: "ghosts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghosts")
	assert.Equal(t, []string{"create-user:bob", "add-to-group:bob:ghosts"}, *h.log)
}

// TestDelete_OrderedBestEffort verifies the teardown order (membership,
// login profile, policy, account) and that a failed step does not stop the
// remaining ones.
func TestDelete_OrderedBestEffort(t *testing.T) {
	h := newTestHarness()
	h.api.stepErrs["delete-login-profile"] = errors.New("NoSuchEntity")

	report := h.svc.Delete(context.Background(), "bob", "students")

	assert.Equal(t, []string{
		"remove-from-group:bob:students",
		"delete-login-profile:bob",
		"delete-user-policy:bob:lfr-bob-access",
		"delete-user:bob",
	}, *h.log)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, "delete login profile", report.Failed[0].Action)
	assert.Len(t, report.Succeeded, 3)
}

// TestCreateGroup verifies group creation attaches the account-scoped shared
// policy.
func TestCreateGroup(t *testing.T) {
	h := newTestHarness()

	require.NoError(t, h.svc.CreateGroup(context.Background(), "students"))
	assert.Equal(t, []string{
		"create-group:students",
		"attach-group-policy:students:arn:aws:iam::123456789012:policy/lfr-student-access",
	}, *h.log)
}

func TestCreateGroup_CreateFailure(t *testing.T) {
	h := newTestHarness()
	h.api.stepErrs["create-group"] = errors.New("EntityAlreadyExists")

	err := h.svc.CreateGroup(context.Background(), "students")
	var creationErr *model.CreationError
	require.ErrorAs(t, err, &creationErr)
	assert.Equal(t, "group", creationErr.Resource)
	assert.Equal(t, []string{"create-group:students"}, *h.log)
}

// TestDeleteGroup_DepthFirstCascade verifies each member is fully torn down
// (instances, then identity) before the next member, and group cleanup runs
// last.
func TestDeleteGroup_DepthFirstCascade(t *testing.T) {
	h := newTestHarness()
	h.api.members = []string{"u1", "u2"}

	report, err := h.svc.DeleteGroup(context.Background(), "students")
	require.NoError(t, err)
	assert.True(t, report.Clean())

	assert.Equal(t, []string{
		"get-group:students",
		"delete-instances-for:u1",
		"remove-from-group:u1:students",
		"delete-login-profile:u1",
		"delete-user-policy:u1:lfr-u1-access",
		"delete-user:u1",
		"delete-instances-for:u2",
		"remove-from-group:u2:students",
		"delete-login-profile:u2",
		"delete-user-policy:u2:lfr-u2-access",
		"delete-user:u2",
		"detach-group-policy:students:arn:aws:iam::123456789012:policy/lfr-student-access",
		"delete-group:students",
	}, *h.log)
}

// TestDeleteGroup_MemberListingFailure verifies the cascade refuses to start
// without a member list.
func TestDeleteGroup_MemberListingFailure(t *testing.T) {
	h := newTestHarness()
	h.api.membersErr = errors.New("unavailable")

	report, err := h.svc.DeleteGroup(context.Background(), "students")
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Equal(t, []string{"get-group:students"}, *h.log)
}

// TestDeleteGroup_CollectsMemberFailures verifies a member with failing
// instance deletions still gets its identity torn down and the failures end
// up in the merged report.
func TestDeleteGroup_CollectsMemberFailures(t *testing.T) {
	h := newTestHarness()
	h.api.members = []string{"u1"}
	failed := &model.CascadeReport{}
	failed.Record("delete instance", "u1-std-small", errors.New("in use"))
	h.instances.reports = map[string]*model.CascadeReport{"u1": failed}

	report, err := h.svc.DeleteGroup(context.Background(), "students")
	require.NoError(t, err)

	assert.False(t, report.Clean())
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "u1-std-small", report.Failed[0].Resource)
	assert.Contains(t, *h.log, "delete-user:u1")
}
