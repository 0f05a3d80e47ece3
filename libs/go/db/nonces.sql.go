package db

import (
	"context"
)

const consumeFirstNonce = `-- name: ConsumeFirstNonce :one
INSERT INTO account_nonces (account, nonce, updated_at)
VALUES ($1, 1, NOW())
ON CONFLICT (account) DO UPDATE
    SET nonce = account_nonces.nonce + 1, updated_at = NOW()
    WHERE account_nonces.nonce = 0
RETURNING nonce
`

// ConsumeFirstNonce moves an account from nonce 0 to 1, creating the row if
// needed. Returns pgx.ErrNoRows when the account is already past 0.
func (q *Queries) ConsumeFirstNonce(ctx context.Context, account string) (int64, error) {
	row := q.db.QueryRow(ctx, consumeFirstNonce, account)
	var nonce int64
	err := row.Scan(&nonce)
	return nonce, err
}

const consumeNonce = `-- name: ConsumeNonce :one
UPDATE account_nonces
SET nonce = nonce + 1, updated_at = NOW()
WHERE account = $1 AND nonce = $2
RETURNING nonce
`

type ConsumeNonceParams struct {
	Account  string `json:"account"`
	Expected int64  `json:"expected"`
}

// ConsumeNonce advances an account's nonce from Expected to Expected+1.
// Returns pgx.ErrNoRows when the stored nonce differs.
func (q *Queries) ConsumeNonce(ctx context.Context, arg ConsumeNonceParams) (int64, error) {
	row := q.db.QueryRow(ctx, consumeNonce, arg.Account, arg.Expected)
	var nonce int64
	err := row.Scan(&nonce)
	return nonce, err
}

const getNonce = `-- name: GetNonce :one
SELECT nonce FROM account_nonces
WHERE account = $1
`

func (q *Queries) GetNonce(ctx context.Context, account string) (int64, error) {
	row := q.db.QueryRow(ctx, getNonce, account)
	var nonce int64
	err := row.Scan(&nonce)
	return nonce, err
}
