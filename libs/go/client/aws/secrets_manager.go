package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets from AWS Secrets Manager, falling
// back to plain environment variables when no ARN is configured.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient uses the default AWS configuration chain.
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

// NewSecretsManagerClientWithAPI is used by tests.
func NewSecretsManagerClientWithAPI(svc secretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString reads the secret named by the ARN in secretArnEnvVar. A
// secret stored as a single-key JSON object yields that key's value. When
// the ARN is unset or the fetch fails, fallbackEnvVar is read directly.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if raw, ok := c.fetch(ctx, secretArnEnvVar); ok {
		var secretJSON map[string]string
		if err := json.Unmarshal([]byte(raw), &secretJSON); err == nil && len(secretJSON) == 1 {
			for _, value := range secretJSON {
				return value, nil
			}
		}
		return raw, nil
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret value from environment", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// rdsSecret is the JSON layout of an RDS-managed credentials secret.
type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
}

// GetDatabaseURL returns a postgres DSN. The secret may hold either a DSN or
// RDS credentials JSON.
func (c *SecretsManagerClient) GetDatabaseURL(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if raw, ok := c.fetch(ctx, secretArnEnvVar); ok {
		var secret rdsSecret
		if err := json.Unmarshal([]byte(raw), &secret); err == nil && secret.Host != "" {
			return secret.dsn(), nil
		}
		return raw, nil
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("database url not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func (s rdsSecret) dsn() string {
	port := s.Port
	if port == 0 {
		port = 5432
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.Username, s.Password),
		Host:     fmt.Sprintf("%s:%d", s.Host, port),
		Path:     "/" + s.DBName,
		RawQuery: "sslmode=require",
	}
	return u.String()
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArnEnvVar string) (string, bool) {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" || c == nil || c.svc == nil {
		return "", false
	}

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil || result.SecretString == nil || *result.SecretString == "" {
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.Error(err),
		)
		return "", false
	}
	logger.Log.Info("Fetched secret from Secrets Manager", zap.String("secretArnEnvVar", secretArnEnvVar))
	return *result.SecretString, true
}
