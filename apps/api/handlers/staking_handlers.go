package handlers

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/amped-finance/amped-api/libs/go/client/auth"
	"github.com/amped-finance/amped-api/libs/go/db"
	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/interfaces"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/middleware"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/amped-finance/amped-api/libs/go/types/api/requests"
	"github.com/amped-finance/amped-api/libs/go/types/api/responses"
	"github.com/amped-finance/amped-api/libs/go/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StakingHandler serves the staking router: domain, nonces, digests and the
// self-service, delegated and relayed stake paths.
type StakingHandler struct {
	staking interfaces.StakingService
	relay   interfaces.RelayQueue
	now     func() time.Time
}

// Use types from the centralized packages
type StakeRequest = requests.StakeRequest
type StakeForAccountRequest = requests.StakeForAccountRequest

type DomainResponse = responses.DomainResponse
type NonceResponse = responses.NonceResponse
type DigestResponse = responses.DigestResponse
type StakeResponse = responses.StakeResponse
type StakeFailureResponse = responses.StakeFailureResponse
type RelayAcceptedResponse = responses.RelayAcceptedResponse
type StakeAuthorizationResponse = responses.StakeAuthorizationResponse
type ListResponse = responses.ListResponse

// NewStakingHandler creates a handler with interface dependencies. relay may
// be nil, in which case the relay endpoint answers 503.
func NewStakingHandler(staking interfaces.StakingService, relay interfaces.RelayQueue) *StakingHandler {
	return &StakingHandler{
		staking: staking,
		relay:   relay,
		now:     time.Now,
	}
}

// GetDomain godoc
// @Summary Get the EIP-712 domain
// @Description Returns the domain delegated stake signatures are bound to, with its separator
// @Tags staking
// @Produce json
// @Success 200 {object} DomainResponse
// @Router /staking/domain [get]
func (h *StakingHandler) GetDomain(c *gin.Context) {
	sendSuccess(c, http.StatusOK, toDomainResponse(h.staking.Domain(), h.staking.DomainSeparator()))
}

// GetNonce godoc
// @Summary Get an account's nonce
// @Description Returns the nonce the account's next delegated stake signature must cover
// @Tags staking
// @Produce json
// @Param account path string true "Account address"
// @Success 200 {object} NonceResponse
// @Failure 400 {object} ErrorResponse
// @Router /staking/nonce/{account} [get]
func (h *StakingHandler) GetNonce(c *gin.Context) {
	account, err := helpers.ParseAddress(c.Param("account"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account address", err)
		return
	}

	nonce, err := h.staking.Nonce(c.Request.Context(), account)
	if err != nil {
		sendStakingError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, NonceResponse{Account: account.Hex(), Nonce: nonce})
}

// GetDigest godoc
// @Summary Prepare a delegated stake digest
// @Description Returns the digest to sign for the account's current nonce, plus the eth_signTypedData_v4 payload
// @Tags staking
// @Produce json
// @Param account query string true "Account address"
// @Param amount query string true "Amount in wei"
// @Param deadline query int true "Unix deadline in seconds"
// @Success 200 {object} DigestResponse
// @Failure 400 {object} ErrorResponse
// @Router /staking/digest [get]
func (h *StakingHandler) GetDigest(c *gin.Context) {
	account, err := helpers.ParseAddress(c.Query("account"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account address", err)
		return
	}
	amount, err := helpers.ParseAmount(c.Query("amount"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amount", err)
		return
	}
	deadline, err := helpers.ParseDeadline(c.Query("deadline"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline", err)
		return
	}

	digest, err := h.staking.PrepareDigest(c.Request.Context(), account, amount, deadline)
	if err != nil {
		sendStakingError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toDigestResponse(digest))
}

// Stake godoc
// @Summary Stake for the caller
// @Description Self-service stake for the wallet authenticated by the bearer token
// @Tags staking
// @Accept json
// @Produce json
// @Security WalletAuth
// @Param X-Account header string false "Wallet to use when the token carries several"
// @Param request body StakeRequest true "Stake amount"
// @Success 200 {object} StakeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /staking/stake [post]
func (h *StakingHandler) Stake(c *gin.Context) {
	caller, ok := auth.Caller(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Wallet authentication required", nil)
		return
	}

	var req StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	receipt, err := h.staking.Stake(c.Request.Context(), caller, amount)
	if err != nil {
		sendStakingError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toStakeResponse(receipt))
}

// StakeForAccount godoc
// @Summary Submit a delegated stake
// @Description Stakes on behalf of an account using its EIP-712 signature. Once the signature is accepted the nonce is spent even if the stake fails.
// @Tags staking
// @Accept json
// @Produce json
// @Param request body StakeForAccountRequest true "Signed stake authorization"
// @Success 200 {object} StakeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} StakeFailureResponse
// @Router /staking/stake-for-account [post]
func (h *StakingHandler) StakeForAccount(c *gin.Context) {
	stake, ok := h.bindDelegatedStake(c)
	if !ok {
		return
	}

	receipt, err := h.staking.StakeForAccount(c.Request.Context(), stake)
	if err != nil {
		var consumed *stakingrouter.ConsumedAuthorizationError
		if errors.As(err, &consumed) {
			middleware.LogWithCorrelationID(c.Request.Context()).Warn("Delegated stake failed after nonce was consumed",
				logger.Account(consumed.Account),
				logger.Nonce(consumed.Nonce),
				zap.Error(err),
			)
			c.JSON(http.StatusUnprocessableEntity, StakeFailureResponse{
				Error:         err.Error(),
				Account:       consumed.Account.Hex(),
				NonceConsumed: consumed.Nonce,
			})
			return
		}
		sendStakingError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toStakeResponse(receipt))
}

// Relay godoc
// @Summary Queue a delegated stake
// @Description Accepts a signed stake authorization for asynchronous submission by the relayer
// @Tags staking
// @Accept json
// @Produce json
// @Param request body StakeForAccountRequest true "Signed stake authorization"
// @Success 202 {object} RelayAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /staking/relay [post]
func (h *StakingHandler) Relay(c *gin.Context) {
	if h.relay == nil {
		sendError(c, http.StatusServiceUnavailable, "Relay is not configured", nil)
		return
	}

	stake, ok := h.bindDelegatedStake(c)
	if !ok {
		return
	}
	// rejecting here spares a queue slot; the router checks again on submission
	if stake.Deadline < uint64(h.now().Unix()) {
		sendStakingError(c, stakingrouter.ErrExpiredAuthorization)
		return
	}
	// the worker would skip the task; refuse it now instead of reporting
	// "queued" for a stake that is never submitted
	if enabled, err := h.staking.SwapEnabled(); err == nil && !enabled {
		sendStakingError(c, &stakingrouter.CollaboratorError{Op: "swap", Err: stakingrouter.ErrSwapDisabled})
		return
	}

	task := business.RelayTask{
		ID:            uuid.New(),
		Account:       stake.Account,
		Amount:        stake.Amount,
		Deadline:      stake.Deadline,
		Signature:     stake.Signature,
		CorrelationID: stake.CorrelationID,
	}
	if err := h.relay.Enqueue(c.Request.Context(), task); err != nil {
		sendStakingError(c, err)
		return
	}

	sendSuccess(c, http.StatusAccepted, RelayAcceptedResponse{
		TaskID:  task.ID.String(),
		Account: task.Account.Hex(),
		Status:  "queued",
	})
}

// ListAuthorizations godoc
// @Summary List recorded stake attempts
// @Description Lists an account's stake attempts, newest first
// @Tags staking
// @Produce json
// @Param account path string true "Account address"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /staking/authorizations/{account} [get]
func (h *StakingHandler) ListAuthorizations(c *gin.Context) {
	account, err := helpers.ParseAddress(c.Param("account"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account address", err)
		return
	}
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	rows, err := h.staking.ListAuthorizations(c.Request.Context(), account, page.Limit, page.Offset)
	if err != nil {
		sendStakingError(c, err)
		return
	}

	items := make([]StakeAuthorizationResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toStakeAuthorizationResponse(row))
	}
	sendList(c, items, len(items), page.Limit, page.Offset)
}

func (h *StakingHandler) bindDelegatedStake(c *gin.Context) (business.DelegatedStake, bool) {
	var req StakeForAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return business.DelegatedStake{}, false
	}

	account, err := helpers.ParseAddress(req.Account)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account address", err)
		return business.DelegatedStake{}, false
	}
	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amount", err)
		return business.DelegatedStake{}, false
	}
	sig, err := signatureFromRequest(req)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid signature", err)
		return business.DelegatedStake{}, false
	}

	return business.DelegatedStake{
		Account:       account,
		Amount:        amount,
		Deadline:      req.Deadline,
		Signature:     sig,
		CorrelationID: middleware.GetCorrelationID(c),
	}, true
}

// signatureFromRequest accepts either a 65 byte hex signature or its v, r
// and s components, but not both.
func signatureFromRequest(req StakeForAccountRequest) (stakingrouter.Signature, error) {
	hasComponents := req.V != nil || req.R != "" || req.S != ""
	switch {
	case req.Signature != "" && hasComponents:
		return stakingrouter.Signature{}, fmt.Errorf("provide either signature or v, r and s")
	case req.Signature != "":
		sig := strings.TrimSpace(req.Signature)
		if !helpers.IsSignatureValid(sig) {
			return stakingrouter.Signature{}, fmt.Errorf("signature must be 65 bytes of 0x-prefixed hex")
		}
		return stakingrouter.ParseSignature(sig)
	case req.V == nil || req.R == "" || req.S == "":
		return stakingrouter.Signature{}, fmt.Errorf("signature is required")
	}

	r, err := decodeWord(req.R)
	if err != nil {
		return stakingrouter.Signature{}, fmt.Errorf("invalid r: %w", err)
	}
	s, err := decodeWord(req.S)
	if err != nil {
		return stakingrouter.Signature{}, fmt.Errorf("invalid s: %w", err)
	}
	return stakingrouter.SignatureFromVRS(*req.V, r, s), nil
}

func decodeWord(v string) ([32]byte, error) {
	var out [32]byte
	b, err := hexutil.Decode(strings.TrimSpace(v))
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func toDomainResponse(domain stakingrouter.Domain, separator common.Hash) DomainResponse {
	chainID := ""
	if domain.ChainID != nil {
		chainID = domain.ChainID.String()
	}
	return DomainResponse{
		Name:              domain.Name,
		Version:           domain.Version,
		ChainID:           chainID,
		VerifyingContract: domain.VerifyingContract.Hex(),
		Separator:         separator.Hex(),
	}
}

func toDigestResponse(d *business.StakeDigest) DigestResponse {
	return DigestResponse{
		Account:   d.Account.Hex(),
		Amount:    d.Amount.String(),
		Nonce:     d.Nonce,
		Deadline:  d.Deadline,
		Digest:    d.Digest.Hex(),
		TypedData: d.TypedData,
	}
}

func toStakeResponse(r *stakingrouter.StakeReceipt) StakeResponse {
	resp := StakeResponse{
		Account:      r.Account.Hex(),
		AmountIn:     bigString(r.AmountIn),
		AmountStaked: bigString(r.AmountStaked),
		Nonce:        r.Nonce,
	}
	if r.TxHash != nil {
		resp.TxHash = r.TxHash.Hex()
	}
	return resp
}

func toStakeAuthorizationResponse(row db.StakeAuthorization) StakeAuthorizationResponse {
	resp := StakeAuthorizationResponse{
		ID:            row.ID.String(),
		Account:       row.Account,
		Relayer:       helpers.NullableTextToString(row.Relayer),
		Amount:        bigString(db.NumericToBigInt(row.Amount)),
		Deadline:      row.Deadline,
		Delegated:     row.Delegated,
		Outcome:       string(row.Outcome),
		ErrorMessage:  helpers.NullableTextToString(row.ErrorMessage),
		TxHash:        helpers.NullableTextToString(row.TxHash),
		CorrelationID: helpers.NullableTextToString(row.CorrelationID),
		CreatedAt:     row.CreatedAt.Time,
	}
	if row.Nonce.Valid {
		nonce := row.Nonce.Int64
		resp.Nonce = &nonce
	}
	return resp
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
