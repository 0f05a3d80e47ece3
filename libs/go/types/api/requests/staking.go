package requests

// StakeRequest is the body of a self-service stake. The caller is the wallet
// authenticated by the bearer token.
type StakeRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// StakeForAccountRequest is a delegated stake: the account's signature over
// the EIP-712 Stake digest, submitted by a relayer.
type StakeForAccountRequest struct {
	Account   string `json:"account" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Deadline  uint64 `json:"deadline" binding:"required"`
	Signature string `json:"signature,omitempty"`

	// Alternative to Signature: the signature as components.
	V *uint8 `json:"v,omitempty"`
	R string `json:"r,omitempty"`
	S string `json:"s,omitempty"`
}

// SetSwapRequest toggles the swap leg of the stake executor.
type SetSwapRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// FundRequest mints local test tokens to an account and approves the
// router to pull them.
type FundRequest struct {
	Account string `json:"account" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}
