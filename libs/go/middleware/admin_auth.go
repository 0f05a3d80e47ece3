package middleware

import (
	"net/http"

	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const APIKeyHeader = "X-API-Key"

// RequireAdminKey admits requests whose X-API-Key matches the bcrypt hash.
// An empty hash disables the protected routes entirely.
func RequireAdminKey(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin API is not configured"})
			return
		}

		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}
		if err := helpers.CompareAPIKeyHash(apiKey, keyHash); err != nil {
			if logger.Log != nil {
				logger.Log.Warn("Rejected admin API key",
					zap.String("key_prefix", helpers.ExtractKeyPrefix(apiKey)),
					zap.String("client_ip", c.ClientIP()),
					logger.CorrelationID(GetCorrelationID(c)),
				)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}
		c.Next()
	}
}
