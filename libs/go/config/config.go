package config

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amped-finance/amped-api/libs/go/constants"
	"github.com/amped-finance/amped-api/libs/go/deployments"
	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

// SecretSource resolves secrets by ARN env var with a plain env fallback.
// *aws.SecretsManagerClient implements it.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetDatabaseURL(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Config is the runtime configuration shared by the API, the relay
// processor and the CLI.
type Config struct {
	Stage   string
	APIPort string

	ChainID        *big.Int
	RouterAddress  common.Address
	Network        string
	DeploymentsDir string

	RouterMode        string
	RPCURL            string
	RelayerPrivateKey string

	NonceBackend  string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SwapEnabled bool
	SwapRateBps uint64

	AdminAPIKeyHash string

	// Wallet sessions for the self-service stake path. An empty secret
	// outside prod gets a per-process random one.
	AuthSessionSecret string
	AuthSessionTTL    time.Duration
	Web3AuthJWKSURL   string
	Web3AuthIssuer    string
	Web3AuthAudience  string

	RateLimitRPS   float64
	RateLimitBurst int

	RelayWorkers          int
	RelayQueueSize        int
	RelayBreakerThreshold int
	RelayBreakerCooldown  time.Duration
	SQSQueueURL           string

	CORSAllowedOrigins []string
}

// LoadEnv loads a local .env file when present.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// Stage returns the validated STAGE, defaulting to local.
func Stage() (string, error) {
	return helpers.ParseStage(os.Getenv("STAGE"))
}

// Load reads the configuration from the environment. Secrets go through
// secrets, which may be nil to read them from plain env vars only.
func Load(ctx context.Context, secrets SecretSource) (*Config, error) {
	stage, err := Stage()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Stage:                 stage,
		APIPort:               getEnv("API_PORT", "8000"),
		Network:               getEnv("NETWORK", "localhost"),
		DeploymentsDir:        os.Getenv("DEPLOYMENTS_DIR"),
		RouterMode:            getEnv("ROUTER_MODE", constants.RouterModeLocal),
		RPCURL:                os.Getenv("RPC_URL"),
		NonceBackend:          getEnv("NONCE_BACKEND", constants.NonceBackendMemory),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		SQSQueueURL:           os.Getenv("SQS_QUEUE_URL"),
		RelayBreakerCooldown:  30 * time.Second,
		AuthSessionTTL:        time.Hour,
		Web3AuthJWKSURL:       os.Getenv("WEB3AUTH_JWKS_ENDPOINT"),
		Web3AuthIssuer:        os.Getenv("WEB3AUTH_ISSUER"),
		Web3AuthAudience:      os.Getenv("WEB3AUTH_AUDIENCE"),
		CORSAllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		RelayBreakerThreshold: 5,
	}

	chainID, ok := new(big.Int).SetString(getEnv("CHAIN_ID", "31337"), 10)
	if !ok || chainID.Sign() <= 0 {
		return nil, fmt.Errorf("invalid CHAIN_ID '%s'", os.Getenv("CHAIN_ID"))
	}
	cfg.ChainID = chainID

	if cfg.SwapEnabled, err = getEnvBool("SWAP_ENABLED", false); err != nil {
		return nil, err
	}
	swapRate, err := getEnvInt("SWAP_RATE_BPS", 10000)
	if err != nil {
		return nil, err
	}
	cfg.SwapRateBps = uint64(swapRate)
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}
	if cfg.RelayWorkers, err = getEnvInt("RELAY_WORKERS", 3); err != nil {
		return nil, err
	}
	if cfg.RelayQueueSize, err = getEnvInt("RELAY_QUEUE_SIZE", 100); err != nil {
		return nil, err
	}
	if cfg.RelayBreakerThreshold, err = getEnvInt("RELAY_BREAKER_THRESHOLD", cfg.RelayBreakerThreshold); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if v := os.Getenv("RELAY_BREAKER_COOLDOWN"); v != "" {
		if cfg.RelayBreakerCooldown, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid RELAY_BREAKER_COOLDOWN '%s': %w", v, err)
		}
	}

	if v := os.Getenv("AUTH_SESSION_TTL"); v != "" {
		if cfg.AuthSessionTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid AUTH_SESSION_TTL '%s': %w", v, err)
		}
	}

	if cfg.RouterAddress, err = resolveRouterAddress(cfg); err != nil {
		return nil, err
	}

	if secrets == nil {
		secrets = envSecrets{}
	}
	// Optional secrets: a missing value is fine here and caught by Validate
	// where the selected mode needs it.
	cfg.AdminAPIKeyHash, _ = secrets.GetSecretString(ctx, "ADMIN_API_KEY_HASH_ARN", "ADMIN_API_KEY_HASH")
	cfg.RedisPassword, _ = secrets.GetSecretString(ctx, "REDIS_PASSWORD_ARN", "REDIS_PASSWORD")
	cfg.AuthSessionSecret, _ = secrets.GetSecretString(ctx, "AUTH_SESSION_SECRET_ARN", "AUTH_SESSION_SECRET")
	if cfg.NonceBackend == constants.NonceBackendPostgres {
		if cfg.DatabaseURL, err = secrets.GetDatabaseURL(ctx, "DATABASE_URL_ARN", "DATABASE_URL"); err != nil {
			return nil, err
		}
	} else {
		cfg.DatabaseURL, _ = secrets.GetDatabaseURL(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	}
	if cfg.RouterMode == constants.RouterModeChain {
		if cfg.RelayerPrivateKey, err = secrets.GetSecretString(ctx, "RELAYER_PRIVATE_KEY_ARN", "RELAYER_PRIVATE_KEY"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements of the selected modes.
func (c *Config) Validate() error {
	switch c.RouterMode {
	case constants.RouterModeLocal:
	case constants.RouterModeChain:
		if c.RPCURL == "" {
			return errors.New("RPC_URL is required when ROUTER_MODE=chain")
		}
		if !helpers.IsPrivateKeyValid(c.RelayerPrivateKey) {
			return errors.New("RELAYER_PRIVATE_KEY is not a valid private key")
		}
		if c.RouterAddress == (common.Address{}) {
			return errors.New("a router address is required when ROUTER_MODE=chain")
		}
	default:
		return fmt.Errorf("invalid ROUTER_MODE '%s'", c.RouterMode)
	}

	switch c.NonceBackend {
	case constants.NonceBackendMemory:
	case constants.NonceBackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when NONCE_BACKEND=postgres")
		}
	case constants.NonceBackendRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when NONCE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("invalid NONCE_BACKEND '%s'", c.NonceBackend)
	}

	if c.RouterMode == constants.RouterModeChain && c.NonceBackend != constants.NonceBackendMemory {
		return errors.New("NONCE_BACKEND only applies to ROUTER_MODE=local; the contract holds nonces in chain mode")
	}
	if c.RelayWorkers <= 0 || c.RelayQueueSize <= 0 {
		return errors.New("RELAY_WORKERS and RELAY_QUEUE_SIZE must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.IsProduction() && c.AuthSessionSecret == "" {
		return errors.New("AUTH_SESSION_SECRET is required in prod")
	}
	if c.AuthSessionTTL <= 0 {
		return errors.New("AUTH_SESSION_TTL must be positive")
	}
	return nil
}

// IsProduction reports whether the stage is prod.
func (c *Config) IsProduction() bool {
	return c.Stage == helpers.StageProd
}

// resolveRouterAddress prefers ROUTER_ADDRESS and falls back to the
// deployment ledger. Local mode without either gets a fixed placeholder.
func resolveRouterAddress(cfg *Config) (common.Address, error) {
	if v := os.Getenv("ROUTER_ADDRESS"); v != "" {
		if !helpers.IsAddressValid(v) {
			return common.Address{}, fmt.Errorf("invalid ROUTER_ADDRESS '%s'", v)
		}
		return common.HexToAddress(v), nil
	}
	if cfg.DeploymentsDir != "" {
		ledger, err := deployments.Load(cfg.DeploymentsDir, cfg.Network)
		if err != nil {
			return common.Address{}, err
		}
		return ledger.Address(constants.StakingRouterContract)
	}
	return common.Address{}, nil
}

type envSecrets struct{}

func (envSecrets) GetSecretString(_ context.Context, _ string, fallbackEnvVar string) (string, error) {
	if v := os.Getenv(fallbackEnvVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s is not set", fallbackEnvVar)
}

func (e envSecrets) GetDatabaseURL(ctx context.Context, arnEnvVar string, fallbackEnvVar string) (string, error) {
	return e.GetSecretString(ctx, arnEnvVar, fallbackEnvVar)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %w", key, value, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %w", key, value, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s '%s': %w", key, value, err)
	}
	return b, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
