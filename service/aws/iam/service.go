package awsiam

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/elC0mpa/lfr-cli/model"
)

func NewService(awsconfig aws.Config) *service {
	client := iam.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

func (s *service) CreateUser(ctx context.Context, user string) error {
	_, err := s.client.CreateUser(ctx, &iam.CreateUserInput{
		UserName: aws.String(user),
	})
	return err
}

// GetUser implements service.IdentityService
func (s *service) GetUser(ctx context.Context, user string) (*model.UserDetails, error) {
	output, err := s.client.GetUser(ctx, &iam.GetUserInput{
		UserName: aws.String(user),
	})
	if err != nil {
		return nil, err
	}
	if output.User == nil {
		return nil, fmt.Errorf("user %q missing from provider response", user)
	}

	details := &model.UserDetails{
		UserName: aws.ToString(output.User.UserName),
		UserID:   aws.ToString(output.User.UserId),
		ARN:      aws.ToString(output.User.Arn),
	}
	if output.User.CreateDate != nil {
		details.CreateDate = *output.User.CreateDate
	}

	return details, nil
}

func (s *service) DeleteUser(ctx context.Context, user string) error {
	_, err := s.client.DeleteUser(ctx, &iam.DeleteUserInput{
		UserName: aws.String(user),
	})
	return err
}

func (s *service) CreateGroup(ctx context.Context, group string) error {
	_, err := s.client.CreateGroup(ctx, &iam.CreateGroupInput{
		GroupName: aws.String(group),
	})
	return err
}

func (s *service) DeleteGroup(ctx context.Context, group string) error {
	_, err := s.client.DeleteGroup(ctx, &iam.DeleteGroupInput{
		GroupName: aws.String(group),
	})
	return err
}

// GetGroupMembers lists the usernames of a group's member accounts,
// following pagination markers. Membership is always discovered by listing,
// never cached.
func (s *service) GetGroupMembers(ctx context.Context, group string) ([]string, error) {
	var members []string

	input := &iam.GetGroupInput{
		GroupName: aws.String(group),
	}
	for {
		output, err := s.client.GetGroup(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, user := range output.Users {
			members = append(members, aws.ToString(user.UserName))
		}

		if !output.IsTruncated {
			return members, nil
		}
		input.Marker = output.Marker
	}
}

func (s *service) AddUserToGroup(ctx context.Context, user, group string) error {
	_, err := s.client.AddUserToGroup(ctx, &iam.AddUserToGroupInput{
		UserName:  aws.String(user),
		GroupName: aws.String(group),
	})
	return err
}

func (s *service) RemoveUserFromGroup(ctx context.Context, user, group string) error {
	_, err := s.client.RemoveUserFromGroup(ctx, &iam.RemoveUserFromGroupInput{
		UserName:  aws.String(user),
		GroupName: aws.String(group),
	})
	return err
}

func (s *service) CreateLoginProfile(ctx context.Context, user, password string, resetRequired bool) error {
	_, err := s.client.CreateLoginProfile(ctx, &iam.CreateLoginProfileInput{
		UserName:              aws.String(user),
		Password:              aws.String(password),
		PasswordResetRequired: resetRequired,
	})
	return err
}

func (s *service) DeleteLoginProfile(ctx context.Context, user string) error {
	_, err := s.client.DeleteLoginProfile(ctx, &iam.DeleteLoginProfileInput{
		UserName: aws.String(user),
	})
	return err
}

func (s *service) PutUserPolicy(ctx context.Context, user, policyName, document string) error {
	_, err := s.client.PutUserPolicy(ctx, &iam.PutUserPolicyInput{
		UserName:       aws.String(user),
		PolicyName:     aws.String(policyName),
		PolicyDocument: aws.String(document),
	})
	return err
}

func (s *service) DeleteUserPolicy(ctx context.Context, user, policyName string) error {
	_, err := s.client.DeleteUserPolicy(ctx, &iam.DeleteUserPolicyInput{
		UserName:   aws.String(user),
		PolicyName: aws.String(policyName),
	})
	return err
}

func (s *service) AttachGroupPolicy(ctx context.Context, group, policyARN string) error {
	_, err := s.client.AttachGroupPolicy(ctx, &iam.AttachGroupPolicyInput{
		GroupName: aws.String(group),
		PolicyArn: aws.String(policyARN),
	})
	return err
}

func (s *service) DetachGroupPolicy(ctx context.Context, group, policyARN string) error {
	_, err := s.client.DetachGroupPolicy(ctx, &iam.DetachGroupPolicyInput{
		GroupName: aws.String(group),
		PolicyArn: aws.String(policyARN),
	})
	return err
}
