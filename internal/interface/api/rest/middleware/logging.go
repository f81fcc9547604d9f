package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// RequestLogGin logs one line per request. Upload bodies are binary, so
// only sizes are recorded, never content.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") ||
			strings.HasSuffix(c.Request.URL.Path, "/healthz") {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
			if status >= http.StatusInternalServerError {
				mCounter.WithLabelValues("app_request_errors_total").Inc()
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.Int64("bytes_in", c.Request.ContentLength),
			zap.Int("bytes_out", c.Writer.Size()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if ownerID := c.Param("owner_id"); ownerID != "" {
			fields = append(fields,
				zap.String("owner_id", ownerID),
				zap.String("slot", c.Param("slot")),
			)
		}

		if status >= http.StatusInternalServerError {
			logger.Warn("HTTP request", fields...)
			return
		}
		logger.Info("HTTP request", fields...)
	}
}
