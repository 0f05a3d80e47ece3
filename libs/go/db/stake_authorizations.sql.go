package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createStakeAuthorization = `-- name: CreateStakeAuthorization :one
INSERT INTO stake_authorizations (
    account, relayer, amount, nonce, deadline, delegated, outcome, error_message, tx_hash, correlation_id
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING id, account, relayer, amount, nonce, deadline, delegated, outcome, error_message, tx_hash, correlation_id, created_at
`

type CreateStakeAuthorizationParams struct {
	Account       string               `json:"account"`
	Relayer       pgtype.Text          `json:"relayer"`
	Amount        pgtype.Numeric       `json:"amount"`
	Nonce         pgtype.Int8          `json:"nonce"`
	Deadline      int64                `json:"deadline"`
	Delegated     bool                 `json:"delegated"`
	Outcome       AuthorizationOutcome `json:"outcome"`
	ErrorMessage  pgtype.Text          `json:"error_message"`
	TxHash        pgtype.Text          `json:"tx_hash"`
	CorrelationID pgtype.Text          `json:"correlation_id"`
}

func (q *Queries) CreateStakeAuthorization(ctx context.Context, arg CreateStakeAuthorizationParams) (StakeAuthorization, error) {
	row := q.db.QueryRow(ctx, createStakeAuthorization,
		arg.Account,
		arg.Relayer,
		arg.Amount,
		arg.Nonce,
		arg.Deadline,
		arg.Delegated,
		arg.Outcome,
		arg.ErrorMessage,
		arg.TxHash,
		arg.CorrelationID,
	)
	var i StakeAuthorization
	err := row.Scan(
		&i.ID,
		&i.Account,
		&i.Relayer,
		&i.Amount,
		&i.Nonce,
		&i.Deadline,
		&i.Delegated,
		&i.Outcome,
		&i.ErrorMessage,
		&i.TxHash,
		&i.CorrelationID,
		&i.CreatedAt,
	)
	return i, err
}

const listStakeAuthorizationsByAccount = `-- name: ListStakeAuthorizationsByAccount :many
SELECT id, account, relayer, amount, nonce, deadline, delegated, outcome, error_message, tx_hash, correlation_id, created_at
FROM stake_authorizations
WHERE account = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListStakeAuthorizationsByAccountParams struct {
	Account string `json:"account"`
	Limit   int32  `json:"limit"`
	Offset  int32  `json:"offset"`
}

func (q *Queries) ListStakeAuthorizationsByAccount(ctx context.Context, arg ListStakeAuthorizationsByAccountParams) ([]StakeAuthorization, error) {
	rows, err := q.db.Query(ctx, listStakeAuthorizationsByAccount, arg.Account, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []StakeAuthorization{}
	for rows.Next() {
		var i StakeAuthorization
		if err := rows.Scan(
			&i.ID,
			&i.Account,
			&i.Relayer,
			&i.Amount,
			&i.Nonce,
			&i.Deadline,
			&i.Delegated,
			&i.Outcome,
			&i.ErrorMessage,
			&i.TxHash,
			&i.CorrelationID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
