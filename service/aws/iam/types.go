package awsiam

import (
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

type service struct {
	client *iam.Client
}
