package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AuthorizationOutcome is the result recorded for a delegated stake attempt.
type AuthorizationOutcome string

const (
	AuthorizationOutcomeStaked             AuthorizationOutcome = "staked"
	AuthorizationOutcomeExpired            AuthorizationOutcome = "expired"
	AuthorizationOutcomeInvalid            AuthorizationOutcome = "invalid"
	AuthorizationOutcomeCollaboratorFailed AuthorizationOutcome = "collaborator_failed"
	AuthorizationOutcomeError              AuthorizationOutcome = "error"
)

type AccountNonce struct {
	Account   string             `json:"account"`
	Nonce     int64              `json:"nonce"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type StakeAuthorization struct {
	ID            uuid.UUID            `json:"id"`
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
	CreatedAt     pgtype.Timestamptz   `json:"created_at"`
}
