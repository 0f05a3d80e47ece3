//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amped-finance/amped-api/apps/api/server"
	"github.com/amped-finance/amped-api/libs/go/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Amped Staking Relay API
// @version         1.0
// @description     Delegated stake authorization for the AmpedStakingRouter.

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// @securityDefinitions.apikey WalletAuth
// @in header
// @name Authorization
func main() {
	r := gin.New()
	r.Use(gin.Recovery())

	// Initialize Handlers
	server.InitializeHandlers()
	defer server.Shutdown()

	// Initialize routes
	server.InitializeRoutes(r)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           r,
		ReadHeaderTimeout: 20 * time.Second, // Prevent Slowloris attacks
	}
	go func() {
		logger.Info("Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
	_ = logger.Sync()
}
