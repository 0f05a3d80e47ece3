package handlers

import (
	"net/http"

	"github.com/amped-finance/amped-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	routerMode   string
	nonceBackend string
	chainID      string
}

func NewHealthHandler(routerMode, nonceBackend, chainID string) *HealthHandler {
	return &HealthHandler{
		routerMode:   routerMode,
		nonceBackend: nonceBackend,
		chainID:      chainID,
	}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Check the health of the server
// @Description Returns "ok" with the router mode and nonce backend in use
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		RouterMode:   h.routerMode,
		NonceBackend: h.nonceBackend,
		ChainID:      h.chainID,
	})
}
