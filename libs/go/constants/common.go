package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name reported in structured logs and metrics
	ServiceName = "amped-api"

	// Nonce backends
	NonceBackendMemory   = "memory"
	NonceBackendPostgres = "postgres"
	NonceBackendRedis    = "redis"

	// Router modes
	RouterModeLocal = "local"
	RouterModeChain = "chain"

	// Deployment ledger key of the staking router
	StakingRouterContract = "AmpedStakingRouter"
)
