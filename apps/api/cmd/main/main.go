//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/amped-finance/amped-api/apps/api/server"
	"github.com/amped-finance/amped-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	r := gin.New()
	r.Use(gin.Recovery())

	// Initialize Handlers (sets up the logger)
	server.InitializeHandlers()

	// Initialize routes
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("method", req.HTTPMethod),
		zap.String("request_id", req.RequestContext.RequestID),
	)
	if logger.Log.Core().Enabled(zap.DebugLevel) {
		logger.Debug("Lambda request dump", zap.String("request", spew.Sdump(req)))
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() {
		_ = logger.Sync()
	}()
	lambda.Start(Handler)
}
