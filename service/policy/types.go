package policy

type service struct{}

type PolicyService interface {
	BuildDocument(instanceARN string) (string, error)
	UserPolicyName(user string) string
	GroupPolicyARN(accountID string) string
}
