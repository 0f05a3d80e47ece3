package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// loadConfig loads the default AWS configuration chain. Pointed at a local
// emulator (AWS_ENDPOINT_URL) without credentials, it signs with static
// placeholder keys so the SDK does not go looking for an instance role.
func loadConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if provider := localCredentials(); provider != nil {
		opts = append(opts, config.WithCredentialsProvider(provider))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return cfg, nil
}

func localCredentials() aws.CredentialsProvider {
	if os.Getenv("AWS_ENDPOINT_URL") == "" || os.Getenv("AWS_ACCESS_KEY_ID") != "" {
		return nil
	}
	return credentials.NewStaticCredentialsProvider("local", "local", "")
}
