package interfaces

import (
	"context"

	"github.com/amped-finance/amped-api/libs/go/types/business"
)

//go:generate mockgen -source=clients.go -destination=../mocks/mock_clients.go -package=mocks

// RelayQueue accepts delegated stakes for asynchronous submission. The
// in-process RelayProcessor and the SQS publisher both implement it.
type RelayQueue interface {
	Enqueue(ctx context.Context, task business.RelayTask) error
}
