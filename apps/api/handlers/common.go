package handlers

import (
	"errors"
	"net/http"

	"github.com/amped-finance/amped-api/libs/go/chain"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/middleware"
	"github.com/amped-finance/amped-api/libs/go/services"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/amped-finance/amped-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type ErrorResponse = responses.ErrorResponse
type SuccessResponse = responses.SuccessResponse

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		logger.CorrelationID(correlationID),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Debug(message, fields...)
	}

	// Include correlation ID in error response for debugging
	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// sendStakingError maps router, relay and service errors onto HTTP statuses.
func sendStakingError(c *gin.Context, err error) {
	status, message := stakingErrorStatus(err)
	sendError(c, status, message, err)
}

func stakingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, stakingrouter.ErrInvalidAmount),
		errors.Is(err, stakingrouter.ErrExpiredAuthorization):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, stakingrouter.ErrInvalidAuthorization):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, chain.ErrCallerNotRelayer):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrDigestMismatch):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrSwapToggleUnavailable),
		errors.Is(err, services.ErrLedgerUnavailable):
		return http.StatusNotImplemented, err.Error()
	case errors.Is(err, services.ErrRelayQueueFull),
		errors.Is(err, services.ErrRelayCircuitOpen),
		errors.Is(err, services.ErrRelayStopped):
		return http.StatusServiceUnavailable, err.Error()
	case stakingrouter.IsCollaboratorFailure(err):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends an offset-paginated list. A full page implies there may be
// more.
func sendList(c *gin.Context, items interface{}, count int, limit, offset int32) {
	c.JSON(http.StatusOK, responses.ListResponse{
		Object:  "list",
		Data:    items,
		Limit:   limit,
		Offset:  offset,
		HasMore: int32(count) == limit,
	})
}
