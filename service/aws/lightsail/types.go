package awslightsail

import (
	"github.com/aws/aws-sdk-go-v2/service/lightsail"
)

type service struct {
	client *lightsail.Client
}
