package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amped-finance/amped-api/libs/go/constants"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hardhatKey0 = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var managedKeys = []string{
	"STAGE", "API_PORT", "NETWORK", "DEPLOYMENTS_DIR", "ROUTER_MODE", "RPC_URL", "NONCE_BACKEND",
	"REDIS_ADDR", "SQS_QUEUE_URL", "CORS_ALLOWED_ORIGINS", "CHAIN_ID", "SWAP_ENABLED", "SWAP_RATE_BPS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RELAY_WORKERS", "RELAY_QUEUE_SIZE", "RELAY_BREAKER_THRESHOLD",
	"RELAY_BREAKER_COOLDOWN", "REDIS_DB", "ROUTER_ADDRESS", "ADMIN_API_KEY_HASH", "REDIS_PASSWORD",
	"DATABASE_URL", "RELAYER_PRIVATE_KEY", "ADMIN_API_KEY_HASH_ARN", "REDIS_PASSWORD_ARN",
	"DATABASE_URL_ARN", "RELAYER_PRIVATE_KEY_ARN", "AUTH_SESSION_SECRET", "AUTH_SESSION_SECRET_ARN",
	"AUTH_SESSION_TTL", "WEB3AUTH_JWKS_ENDPOINT", "WEB3AUTH_ISSUER", "WEB3AUTH_AUDIENCE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, "8000", cfg.APIPort)
	assert.Equal(t, int64(31337), cfg.ChainID.Int64())
	assert.Equal(t, constants.RouterModeLocal, cfg.RouterMode)
	assert.Equal(t, constants.NonceBackendMemory, cfg.NonceBackend)
	assert.False(t, cfg.SwapEnabled)
	assert.Equal(t, uint64(10000), cfg.SwapRateBps)
	assert.Equal(t, 3, cfg.RelayWorkers)
	assert.Equal(t, 30*time.Second, cfg.RelayBreakerCooldown)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.Hour, cfg.AuthSessionTTL)
	assert.Empty(t, cfg.AuthSessionSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STAGE", "prod")
	t.Setenv("CHAIN_ID", "146")
	t.Setenv("ROUTER_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	t.Setenv("SWAP_ENABLED", "true")
	t.Setenv("RELAY_BREAKER_COOLDOWN", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.amped.finance, https://amped.finance")
	t.Setenv("NONCE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("AUTH_SESSION_SECRET", "s3cret")
	t.Setenv("AUTH_SESSION_TTL", "15m")
	t.Setenv("WEB3AUTH_AUDIENCE", "amped-client")

	cfg, err := Load(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.AuthSessionSecret)
	assert.Equal(t, 15*time.Minute, cfg.AuthSessionTTL)
	assert.Equal(t, "amped-client", cfg.Web3AuthAudience)
	assert.Equal(t, int64(146), cfg.ChainID.Int64())
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), cfg.RouterAddress)
	assert.True(t, cfg.SwapEnabled)
	assert.Equal(t, time.Minute, cfg.RelayBreakerCooldown)
	assert.Equal(t, []string{"https://app.amped.finance", "https://amped.finance"}, cfg.CORSAllowedOrigins)
}

func TestLoadRouterAddressFromLedger(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deploy-sonic.json"),
		[]byte(`{"AmpedStakingRouter":"0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"}`), 0o600))
	t.Setenv("DEPLOYMENTS_DIR", dir)
	t.Setenv("NETWORK", "sonic")

	cfg, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"), cfg.RouterAddress)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad stage", env: map[string]string{"STAGE": "staging"}, wantErr: "invalid STAGE"},
		{name: "bad chain id", env: map[string]string{"CHAIN_ID": "abc"}, wantErr: "invalid CHAIN_ID"},
		{name: "bad bool", env: map[string]string{"SWAP_ENABLED": "maybe"}, wantErr: "invalid SWAP_ENABLED"},
		{name: "bad router address", env: map[string]string{"ROUTER_ADDRESS": "0x12"}, wantErr: "invalid ROUTER_ADDRESS"},
		{name: "unknown backend", env: map[string]string{"NONCE_BACKEND": "etcd"}, wantErr: "invalid NONCE_BACKEND"},
		{name: "postgres without url", env: map[string]string{"NONCE_BACKEND": "postgres"}, wantErr: "DATABASE_URL is not set"},
		{name: "redis without addr", env: map[string]string{"NONCE_BACKEND": "redis"}, wantErr: "REDIS_ADDR is required"},
		{name: "chain without rpc", env: map[string]string{
			"ROUTER_MODE": "chain", "RELAYER_PRIVATE_KEY": hardhatKey0,
			"ROUTER_ADDRESS": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		}, wantErr: "RPC_URL is required"},
		{name: "chain without key", env: map[string]string{"ROUTER_MODE": "chain", "RPC_URL": "http://localhost:8545"}, wantErr: "RELAYER_PRIVATE_KEY is not set"},
		{name: "chain with store", env: map[string]string{
			"ROUTER_MODE": "chain", "RPC_URL": "http://localhost:8545", "RELAYER_PRIVATE_KEY": hardhatKey0,
			"ROUTER_ADDRESS": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			"NONCE_BACKEND":  "redis", "REDIS_ADDR": "localhost:6379",
		}, wantErr: "NONCE_BACKEND only applies"},
		{name: "zero workers", env: map[string]string{"RELAY_WORKERS": "0"}, wantErr: "must be positive"},
		{name: "prod without session secret", env: map[string]string{"STAGE": "prod"}, wantErr: "AUTH_SESSION_SECRET is required"},
		{name: "bad session ttl", env: map[string]string{"AUTH_SESSION_TTL": "soon"}, wantErr: "invalid AUTH_SESSION_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(context.Background(), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadChainMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROUTER_MODE", "chain")
	t.Setenv("RPC_URL", "http://localhost:8545")
	t.Setenv("RELAYER_PRIVATE_KEY", hardhatKey0)
	t.Setenv("ROUTER_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")

	cfg, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, hardhatKey0, cfg.RelayerPrivateKey)
}
