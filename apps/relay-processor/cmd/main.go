package main

import (
	"context"
	"os"

	"github.com/amped-finance/amped-api/apps/api/server"
	relayprocessor "github.com/amped-finance/amped-api/apps/relay-processor"
	"github.com/amped-finance/amped-api/libs/go/client/aws"
	"github.com/amped-finance/amped-api/libs/go/config"
	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	stage, err := config.Stage()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing relay processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	var secrets config.SecretSource
	if stage != helpers.StageLocal {
		secretsClient, err := aws.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
		}
		secrets = secretsClient
	}

	// This function is the queue's consumer; it must not publish back to it.
	_ = os.Unsetenv("SQS_QUEUE_URL")
	cfg, err := config.Load(ctx, secrets)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if err := relayprocessor.CheckConfig(cfg); err != nil {
		logger.Fatal("Refusing to start relay processor", zap.Error(err))
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize relay processor", zap.Error(err))
	}
	defer app.Close()

	handler := relayprocessor.NewHandler(app.Processor())

	// Start the Lambda Handler
	lambda.Start(handler.HandleSQSEvent)
}
