package awslightsail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lightsail"
	"github.com/aws/aws-sdk-go-v2/service/lightsail/types"
	"github.com/elC0mpa/lfr-cli/model"
)

func NewService(awsconfig aws.Config) *service {
	client := lightsail.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// CreateInstance implements service.ComputeService. The idle-stop add-on is
// attached at creation so instances left running by students shut themselves
// down.
func (s *service) CreateInstance(ctx context.Context, cfg model.InstanceConfig) error {
	idleRequest := &types.StopInstanceOnIdleRequest{
		Threshold: aws.String(cfg.IdleThreshold),
		Duration:  aws.String(cfg.IdleDuration),
	}

	_, err := s.client.CreateInstances(ctx, &lightsail.CreateInstancesInput{
		InstanceNames:    []string{cfg.Name},
		AvailabilityZone: aws.String(cfg.Zone),
		BlueprintId:      aws.String(cfg.BlueprintID),
		BundleId:         aws.String(cfg.BundleID),
		AddOns: []types.AddOnRequest{
			{
				AddOnType:                 types.AddOnTypeStopInstanceOnIdle,
				StopInstanceOnIdleRequest: idleRequest,
			},
		},
	})

	return err
}

func (s *service) GetInstance(ctx context.Context, name string) (*model.InstanceDetails, error) {
	output, err := s.client.GetInstance(ctx, &lightsail.GetInstanceInput{
		InstanceName: aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	if output.Instance == nil {
		return nil, fmt.Errorf("instance %q missing from provider response", name)
	}

	details := detailsFromInstance(*output.Instance)
	return &details, nil
}

// GetInstances returns the full instance listing, following page tokens.
func (s *service) GetInstances(ctx context.Context) ([]model.InstanceDetails, error) {
	var details []model.InstanceDetails

	input := &lightsail.GetInstancesInput{}
	for {
		output, err := s.client.GetInstances(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, instance := range output.Instances {
			details = append(details, detailsFromInstance(instance))
		}

		if output.NextPageToken == nil {
			return details, nil
		}
		input.PageToken = output.NextPageToken
	}
}

func (s *service) GetInstanceState(ctx context.Context, name string) (string, error) {
	output, err := s.client.GetInstanceState(ctx, &lightsail.GetInstanceStateInput{
		InstanceName: aws.String(name),
	})
	if err != nil {
		return "", err
	}
	if output.State == nil {
		return "", fmt.Errorf("instance %q state missing from provider response", name)
	}

	return aws.ToString(output.State.Name), nil
}

func (s *service) StopInstance(ctx context.Context, name string) error {
	_, err := s.client.StopInstance(ctx, &lightsail.StopInstanceInput{
		InstanceName: aws.String(name),
	})
	return err
}

// DeleteInstance forces deletion of attached add-ons; single call, no retry.
func (s *service) DeleteInstance(ctx context.Context, name string) error {
	_, err := s.client.DeleteInstance(ctx, &lightsail.DeleteInstanceInput{
		InstanceName:      aws.String(name),
		ForceDeleteAddOns: aws.Bool(true),
	})
	return err
}

// DownloadDefaultKeyPair returns the default keypair's private key in PEM
// form.
func (s *service) DownloadDefaultKeyPair(ctx context.Context) (string, error) {
	output, err := s.client.DownloadDefaultKeyPair(ctx, &lightsail.DownloadDefaultKeyPairInput{})
	if err != nil {
		return "", err
	}

	return aws.ToString(output.PrivateKeyBase64), nil
}

func detailsFromInstance(instance types.Instance) model.InstanceDetails {
	details := model.InstanceDetails{
		Name:        aws.ToString(instance.Name),
		ARN:         aws.ToString(instance.Arn),
		BlueprintID: aws.ToString(instance.BlueprintId),
		BundleID:    aws.ToString(instance.BundleId),
		PublicIP:    aws.ToString(instance.PublicIpAddress),
	}

	if instance.Location != nil {
		details.Zone = aws.ToString(instance.Location.AvailabilityZone)
	}
	if instance.State != nil {
		details.State = aws.ToString(instance.State.Name)
	}
	if instance.CreatedAt != nil {
		details.CreatedAt = *instance.CreatedAt
	}

	return details
}
