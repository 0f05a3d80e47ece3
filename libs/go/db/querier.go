package db

import (
	"context"
)

//go:generate mockgen -source=querier.go -destination=../mocks/mock_querier.go -package=mocks

type Querier interface {
	ConsumeNonce(ctx context.Context, arg ConsumeNonceParams) (int64, error)
	ConsumeFirstNonce(ctx context.Context, account string) (int64, error)
	CreateStakeAuthorization(ctx context.Context, arg CreateStakeAuthorizationParams) (StakeAuthorization, error)
	GetNonce(ctx context.Context, account string) (int64, error)
	ListStakeAuthorizationsByAccount(ctx context.Context, arg ListStakeAuthorizationsByAccountParams) ([]StakeAuthorization, error)
}

var _ Querier = (*Queries)(nil)
