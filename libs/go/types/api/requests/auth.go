package requests

// ChallengeRequest asks for a sign-in message for a wallet.
type ChallengeRequest struct {
	Account string `json:"account" binding:"required"`
}

// SessionRequest answers a challenge with the wallet's personal_sign
// signature over its message.
type SessionRequest struct {
	Nonce     string `json:"nonce" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
