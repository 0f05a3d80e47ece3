package handlers

import (
	"net/http"

	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/interfaces"
	"github.com/amped-finance/amped-api/libs/go/types/api/requests"
	"github.com/amped-finance/amped-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operator controls. Routes are guarded by
// middleware.RequireAdminKey.
type AdminHandler struct {
	staking interfaces.StakingService
	faucet  interfaces.Faucet
}

type SetSwapRequest = requests.SetSwapRequest
type FundRequest = requests.FundRequest
type SwapStatusResponse = responses.SwapStatusResponse
type FundResponse = responses.FundResponse

// NewAdminHandler creates the handler. faucet is nil outside the local
// router mode.
func NewAdminHandler(staking interfaces.StakingService, faucet interfaces.Faucet) *AdminHandler {
	return &AdminHandler{staking: staking, faucet: faucet}
}

// GetSwap godoc
// @Summary Get the swap toggle
// @Tags admin
// @Produce json
// @Success 200 {object} SwapStatusResponse
// @Failure 501 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/swap [get]
func (h *AdminHandler) GetSwap(c *gin.Context) {
	enabled, err := h.staking.SwapEnabled()
	if err != nil {
		sendStakingError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, SwapStatusResponse{Enabled: enabled})
}

// SetSwap godoc
// @Summary Enable or disable the swap leg
// @Description While disabled, delegated stakes still consume the account's nonce and then fail with "AmpedStakingRouter: swap disabled"
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetSwapRequest true "Toggle"
// @Success 200 {object} SwapStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/swap [put]
func (h *AdminHandler) SetSwap(c *gin.Context) {
	var req SetSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.staking.SetSwapEnabled(c.Request.Context(), *req.Enabled); err != nil {
		sendStakingError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, SwapStatusResponse{Enabled: *req.Enabled})
}

// Fund godoc
// @Summary Fund an account on the local token
// @Description Mints test tokens to the account and approves the router to pull them. Local router mode only.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body FundRequest true "Account and amount"
// @Success 200 {object} FundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/faucet [post]
func (h *AdminHandler) Fund(c *gin.Context) {
	if h.faucet == nil {
		sendError(c, http.StatusNotImplemented, "Faucet is only available in local router mode", nil)
		return
	}

	var req FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	account, err := helpers.ParseAddress(req.Account)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account address", err)
		return
	}
	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	if err := h.faucet.Fund(c.Request.Context(), account, amount); err != nil {
		sendStakingError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, FundResponse{Account: account.Hex(), Amount: amount.String()})
}
