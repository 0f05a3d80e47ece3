package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness and how the router is wired.
type HealthResponse struct {
	Status       string `json:"status"`
	RouterMode   string `json:"router_mode,omitempty"`
	NonceBackend string `json:"nonce_backend,omitempty"`
	ChainID      string `json:"chain_id,omitempty"`
}

// ListResponse is an offset-paginated list.
type ListResponse struct {
	Object  string      `json:"object"`
	Data    interface{} `json:"data"`
	Limit   int32       `json:"limit"`
	Offset  int32       `json:"offset"`
	HasMore bool        `json:"has_more"`
}
