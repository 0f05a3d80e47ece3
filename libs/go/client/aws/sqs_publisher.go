package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/types/business"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// RelayQueuePublisher sends relay tasks to an SQS queue consumed by the
// relay-processor lambda.
type RelayQueuePublisher struct {
	client   sqsAPI
	queueURL string
}

func NewRelayQueuePublisher(ctx context.Context, queueURL string) (*RelayQueuePublisher, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewRelayQueuePublisherWithAPI(sqs.NewFromConfig(cfg), queueURL), nil
}

func NewRelayQueuePublisherWithAPI(client sqsAPI, queueURL string) *RelayQueuePublisher {
	return &RelayQueuePublisher{client: client, queueURL: queueURL}
}

// Enqueue sends task to the queue. Tasks for one account share a message
// group so a FIFO queue delivers them in nonce order.
func (p *RelayQueuePublisher) Enqueue(ctx context.Context, task business.RelayTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal relay task: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"account": {
				DataType:    aws.String("String"),
				StringValue: aws.String(task.Account.Hex()),
			},
		},
	}
	if isFIFO(p.queueURL) {
		input.MessageGroupId = aws.String(task.Account.Hex())
		input.MessageDeduplicationId = aws.String(task.ID.String())
	}

	out, err := p.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send relay task to SQS: %w", err)
	}

	logger.Log.Info("Relay task queued",
		logger.TaskID(task.ID),
		logger.Account(task.Account),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

func isFIFO(queueURL string) bool {
	return strings.HasSuffix(queueURL, ".fifo")
}
