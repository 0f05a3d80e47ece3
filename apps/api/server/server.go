package server

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/amped-finance/amped-api/docs"

	"github.com/amped-finance/amped-api/apps/api/handlers"
	"github.com/amped-finance/amped-api/libs/go/client/auth"
	awsclient "github.com/amped-finance/amped-api/libs/go/client/aws"
	"github.com/amped-finance/amped-api/libs/go/cache"
	"github.com/amped-finance/amped-api/libs/go/chain"
	"github.com/amped-finance/amped-api/libs/go/config"
	"github.com/amped-finance/amped-api/libs/go/constants"
	"github.com/amped-finance/amped-api/libs/go/db"
	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/interfaces"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/metrics"
	"github.com/amped-finance/amped-api/libs/go/middleware"
	"github.com/amped-finance/amped-api/libs/go/services"
	"github.com/amped-finance/amped-api/libs/go/signer"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// App holds everything the API serves with.
type App struct {
	Config  *config.Config
	Metrics *metrics.Metrics
	Staking *services.StakingService

	relay     interfaces.RelayQueue
	processor *services.RelayProcessor
	limiter   *middleware.RateLimiter
	auth      *auth.AuthClient
	pool      *pgxpool.Pool
	closers   []func()
	cancel    context.CancelFunc

	healthHandler  *handlers.HealthHandler
	stakingHandler *handlers.StakingHandler
	adminHandler   *handlers.AdminHandler
	authHandler    *handlers.AuthHandler
}

// routerParts is what building a router yields beyond the router itself.
type routerParts struct {
	router  interfaces.StakingRouter
	toggle  interfaces.SwapToggle
	faucet  interfaces.Faucet
	relayer *common.Address
}

var app *App

// InitializeHandlers loads configuration and wires the application. It exits
// the process on failure.
func InitializeHandlers() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	stage, err := config.Stage()
	if err != nil {
		log.Fatalf("%v", err)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	var secrets config.SecretSource
	if stage != helpers.StageLocal {
		secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
		}
		secrets = secretsClient
	}

	cfg, err := config.Load(ctx, secrets)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	app, err = NewApp(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}
	app.Start()
}

// InitializeRoutes registers middleware and routes on router.
func InitializeRoutes(router *gin.Engine) {
	app.Routes(router)
}

// Shutdown stops background workers and closes connections.
func Shutdown() {
	if app != nil {
		app.Close()
	}
}

// NewApp builds the router for cfg.RouterMode, the nonce store for
// cfg.NonceBackend, the optional ledger and the relay.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		Config:  cfg,
		Metrics: metrics.New(),
		limiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	authClient, err := newAuthClient(cfg)
	if err != nil {
		return nil, err
	}
	a.auth = authClient
	a.closers = append(a.closers, authClient.Close)

	parts, err := a.buildRouter(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	var recorder interfaces.AuthorizationRecorder
	if cfg.DatabaseURL != "" {
		pool, err := a.database(ctx)
		if err != nil {
			a.Close()
			return nil, err
		}
		recorder = db.NewRecorder(db.New(pool))
	}

	a.Staking = services.NewStakingService(parts.router, parts.toggle, recorder, a.Metrics)

	if cfg.SQSQueueURL != "" {
		publisher, err := awsclient.NewRelayQueuePublisher(ctx, cfg.SQSQueueURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.relay = publisher
	} else {
		a.processor = services.NewRelayProcessor(a.Staking, services.RelayProcessorConfig{
			Workers:          cfg.RelayWorkers,
			QueueSize:        cfg.RelayQueueSize,
			FailureThreshold: cfg.RelayBreakerThreshold,
			ResetTimeout:     cfg.RelayBreakerCooldown,
			Relayer:          parts.relayer,
		}, a.Metrics)
		a.relay = a.processor
	}

	a.healthHandler = handlers.NewHealthHandler(cfg.RouterMode, cfg.NonceBackend, cfg.ChainID.String())
	a.stakingHandler = handlers.NewStakingHandler(a.Staking, a.relay)
	a.adminHandler = handlers.NewAdminHandler(a.Staking, parts.faucet)
	a.authHandler = handlers.NewAuthHandler(a.auth)

	logger.Info("Application initialized",
		zap.String("router_mode", cfg.RouterMode),
		zap.String("nonce_backend", cfg.NonceBackend),
		zap.String("router", cfg.RouterAddress.Hex()),
		zap.Bool("ledger", recorder != nil),
		zap.Bool("sqs_relay", cfg.SQSQueueURL != ""),
		zap.Bool("web3auth", cfg.Web3AuthJWKSURL != ""),
	)
	return a, nil
}

// newAuthClient builds wallet authentication. Outside prod a missing session
// secret is replaced by a random one, so sessions do not survive a restart.
func newAuthClient(cfg *config.Config) (*auth.AuthClient, error) {
	secret := []byte(cfg.AuthSessionSecret)
	if len(secret) == 0 {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("AUTH_SESSION_SECRET is required in production")
		}
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		logger.Warn("AUTH_SESSION_SECRET not set; using an ephemeral session secret")
	}
	return auth.NewAuthClient(auth.Config{
		SessionSecret:    secret,
		SessionTTL:       cfg.AuthSessionTTL,
		Web3AuthJWKSURL:  cfg.Web3AuthJWKSURL,
		Web3AuthIssuer:   cfg.Web3AuthIssuer,
		Web3AuthAudience: cfg.Web3AuthAudience,
	})
}

func (a *App) buildRouter(ctx context.Context) (*routerParts, error) {
	cfg := a.Config

	if cfg.RouterMode == constants.RouterModeChain {
		relayer, err := signer.FromHex(cfg.RelayerPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("invalid relayer key: %w", err)
		}
		client, err := chain.Dial(ctx, cfg.RPCURL, cfg.RouterAddress, relayer.PrivateKey(), chain.WithLogger(logger.Log))
		if err != nil {
			return nil, err
		}
		if client.Domain().ChainID.Cmp(cfg.ChainID) != 0 {
			logger.Warn("CHAIN_ID does not match the RPC node; signing against the node's chain",
				zap.String("configured", cfg.ChainID.String()),
				zap.String("node", client.Domain().ChainID.String()),
			)
		}
		address := client.RelayerAddress()
		return &routerParts{router: client, relayer: &address}, nil
	}

	var nonces stakingrouter.NonceStore
	switch cfg.NonceBackend {
	case constants.NonceBackendPostgres:
		pool, err := a.database(ctx)
		if err != nil {
			return nil, err
		}
		nonces = db.NewNonceStore(db.New(pool))
	case constants.NonceBackendRedis:
		client, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		nonces = cache.NewNonceStore(client, "")
	default:
		nonces = stakingrouter.NewMemoryNonceStore()
	}

	token := stakingrouter.NewMemoryToken()
	executor := stakingrouter.NewSwapStakeExecutor(
		cfg.RouterAddress,
		token,
		stakingrouter.FixedRateSwapper{RateBps: int64(cfg.SwapRateBps)},
		stakingrouter.NewMemoryRewardTracker(),
		cfg.SwapEnabled,
	)
	domain := stakingrouter.NewDomain(cfg.ChainID, cfg.RouterAddress)

	return &routerParts{
		router: stakingrouter.NewRouter(domain, nonces, executor),
		toggle: executor,
		faucet: stakingrouter.NewMemoryFaucet(token, cfg.RouterAddress),
	}, nil
}

// database opens the pool once; the nonce store and the ledger share it.
func (a *App) database(ctx context.Context) (*pgxpool.Pool, error) {
	if a.pool != nil {
		return a.pool, nil
	}
	pool, err := db.NewPool(ctx, a.Config.DatabaseURL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, pool.Close)
	if !a.Config.IsProduction() {
		if err := db.Migrate(ctx, pool); err != nil {
			return nil, err
		}
	}
	a.pool = pool
	return pool, nil
}

// Start launches the relay workers and the rate limiter janitor.
func (a *App) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go a.limiter.Run(ctx, time.Minute)
	if a.processor != nil {
		a.processor.Start()
	}
}

// Processor returns the in-process relay processor, nil when relaying
// goes through SQS.
func (a *App) Processor() *services.RelayProcessor {
	return a.processor
}

// Close stops the workers and releases connections.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.processor != nil {
		a.processor.Stop()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Routes registers middleware and routes.
func (a *App) Routes(router *gin.Engine) {
	router.Use(configureCORS(a.Config.CORSAllowedOrigins))

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.MetricsMiddleware(a.Metrics))
	router.Use(a.limiter.Middleware())
	router.Use(middleware.RequestLoggingMiddleware(!a.Config.IsProduction()))

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	// Health for raw lambda url check
	router.GET("/:stage/health", a.healthHandler.Health)
	router.GET("/health", a.healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/challenge", middleware.ValidateInput(middleware.ChallengeValidation), a.authHandler.Challenge)
			authGroup.POST("/session", middleware.ValidateInput(middleware.SessionValidation), a.authHandler.Session)
		}

		staking := v1.Group("/staking")
		{
			staking.GET("/domain", a.stakingHandler.GetDomain)
			staking.GET("/nonce/:account", a.stakingHandler.GetNonce)
			staking.GET("/digest", a.stakingHandler.GetDigest)
			staking.POST("/stake", a.auth.RequireWallet(), middleware.ValidateInput(middleware.StakeValidation), a.stakingHandler.Stake)
			staking.POST("/stake-for-account", middleware.ValidateInput(middleware.StakeForAccountValidation), a.stakingHandler.StakeForAccount)
			staking.POST("/relay", middleware.ValidateInput(middleware.StakeForAccountValidation), a.stakingHandler.Relay)
			staking.GET("/authorizations/:account", a.stakingHandler.ListAuthorizations)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdminKey(a.Config.AdminAPIKeyHash))
		{
			admin.GET("/swap", a.adminHandler.GetSwap)
			admin.PUT("/swap", middleware.ValidateInput(middleware.SetSwapValidation), a.adminHandler.SetSwap)
			admin.POST("/faucet", middleware.ValidateInput(middleware.FundValidation), a.adminHandler.Fund)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Error:         "route not found",
			CorrelationID: middleware.GetCorrelationID(c),
		})
	})
}

// configureCORS returns a configured CORS middleware
func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept", auth.AuthorizationHeader,
		middleware.APIKeyHeader, auth.AccountHeader, middleware.CorrelationIDHeader,
	}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
		middleware.CorrelationIDHeader,
	}
	return cors.New(corsConfig)
}
