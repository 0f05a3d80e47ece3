package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxLoggedBody caps how much of a request body is copied into debug logs.
const maxLoggedBody = 4096

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"X-Api-Key":     true,
	"Cookie":        true,
}

// RequestLoggingMiddleware logs one line per completed request. With
// verbose set, request headers and body are logged at debug level first.
func RequestLoggingMiddleware(verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger.Log == nil {
			c.Next()
			return
		}
		log := logger.Log.With(logger.CorrelationID(GetCorrelationID(c)))
		start := time.Now()

		if verbose {
			logRequestDetail(c, log)
		}

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("Request completed", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}

func logRequestDetail(c *gin.Context, log *zap.Logger) {
	headers := make(map[string]string, len(c.Request.Header))
	for key, values := range c.Request.Header {
		if redactedHeaders[key] {
			headers[key] = "[REDACTED]"
			continue
		}
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	logged := body
	if len(logged) > maxLoggedBody {
		logged = logged[:maxLoggedBody]
	}

	log.Debug("Request detail",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.Any("headers", headers),
		zap.ByteString("body", logged),
		zap.Int("body_size", len(body)),
	)
}
