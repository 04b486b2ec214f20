package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
)

// SSMProvider fetches the credential from AWS Systems Manager
// Parameter Store. The parameter is expected to be a SecureString, so
// the fetch decrypts it.
type SSMProvider struct {
	client        ssmiface.SSMAPI
	parameterName string
}

// NewSSMProvider creates a provider for the named parameter in the
// given region.
func NewSSMProvider(region, parameterName string) (*SSMProvider, error) {
	if parameterName == "" {
		return nil, fmt.Errorf("SSM parameter name cannot be empty")
	}
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &SSMProvider{
		client:        ssm.New(sess),
		parameterName: parameterName,
	}, nil
}

func (p *SSMProvider) GetSecret(ctx context.Context) (string, error) {
	out, err := p.client.GetParameterWithContext(ctx, &ssm.GetParameterInput{
		Name:           aws.String(p.parameterName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch parameter %s: %w", p.parameterName, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil || *out.Parameter.Value == "" {
		return "", fmt.Errorf("parameter %s is empty", p.parameterName)
	}
	return *out.Parameter.Value, nil
}
