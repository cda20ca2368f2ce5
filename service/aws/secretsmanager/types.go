package awssecrets

import (
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type service struct {
	client *secretsmanager.Client
}
