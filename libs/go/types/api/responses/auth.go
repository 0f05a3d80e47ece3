package responses

import "time"

type ChallengeResponse struct {
	Account   string    `json:"account"`
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	Account   string    `json:"account"`
	ExpiresAt time.Time `json:"expires_at"`
}
