package relayprocessor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amped-finance/amped-api/libs/go/config"
	"github.com/amped-finance/amped-api/libs/go/constants"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/services"
	"github.com/amped-finance/amped-api/libs/go/types/business"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Processor submits a single relay task.
type Processor interface {
	Process(ctx context.Context, task business.RelayTask) business.RelayResult
	CircuitOpen() bool
}

// ErrLocalRouter is returned for a local router configuration. The in-memory
// router, nonces and swap toggle would belong to this function alone, so
// tasks queued by the API would be checked against state it never saw.
var ErrLocalRouter = errors.New("relay processor requires ROUTER_MODE=chain")

// CheckConfig refuses configurations the relay processor cannot serve.
func CheckConfig(cfg *config.Config) error {
	if cfg.RouterMode != constants.RouterModeChain {
		return fmt.Errorf("%w, got %q", ErrLocalRouter, cfg.RouterMode)
	}
	return nil
}

// Handler consumes relay tasks published by the API to SQS.
type Handler struct {
	processor Processor
	logger    *zap.Logger
}

func NewHandler(processor Processor) *Handler {
	return &Handler{processor: processor, logger: logger.Log}
}

// HandleSQSEvent processes a batch and reports the records SQS should
// deliver again. Records whose nonce was consumed are never retried.
func (h *Handler) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	h.logger.Info("Relay processor handling SQS event", zap.Int("record_count", len(event.Records)))

	var resp events.SQSEventResponse
	staked := 0
	for _, record := range event.Records {
		if h.processor.CircuitOpen() {
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}

		var task business.RelayTask
		if err := json.Unmarshal([]byte(record.Body), &task); err != nil {
			// a malformed body will not parse on redelivery either
			h.logger.Error("Dropping unparseable relay task",
				zap.String("message_id", record.MessageId),
				zap.Error(err),
			)
			continue
		}

		result := h.processor.Process(ctx, task)
		switch {
		case result.Err == nil:
			staked++
		case services.Retryable(result.Err):
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		default:
			h.logger.Warn("Relay task finished without staking",
				zap.String("message_id", record.MessageId),
				logger.TaskID(task.ID),
				zap.Error(result.Err),
			)
		}
	}

	h.logger.Info("Relay batch completed",
		zap.Int("total", len(event.Records)),
		zap.Int("staked", staked),
		zap.Int("retry", len(resp.BatchItemFailures)),
	)
	return resp, nil
}
