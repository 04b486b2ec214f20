package secrets

import (
	"context"
	"fmt"
	"os"
)

// Provider resolves the generator credential at startup.
type Provider interface {
	GetSecret(ctx context.Context) (string, error)
}

// EnvProvider reads the credential from an environment variable.
type EnvProvider struct {
	Key string
}

// NewEnvProvider creates a provider reading the given variable.
func NewEnvProvider(key string) *EnvProvider {
	return &EnvProvider{Key: key}
}

func (p *EnvProvider) GetSecret(_ context.Context) (string, error) {
	value := os.Getenv(p.Key)
	if value == "" {
		return "", fmt.Errorf("environment variable %s is not set", p.Key)
	}
	return value, nil
}
