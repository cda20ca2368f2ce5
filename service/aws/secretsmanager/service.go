package awssecrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

func NewService(awsconfig aws.Config) *service {
	client := secretsmanager.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetRandomPassword implements service.SecretsService
func (s *service) GetRandomPassword(ctx context.Context, length int64) (string, error) {
	output, err := s.client.GetRandomPassword(ctx, &secretsmanager.GetRandomPasswordInput{
		PasswordLength: aws.Int64(length),
	})
	if err != nil {
		return "", err
	}
	if output.RandomPassword == nil {
		return "", fmt.Errorf("random password missing from provider response")
	}

	return aws.ToString(output.RandomPassword), nil
}
