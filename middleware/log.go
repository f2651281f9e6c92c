package middleware

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
)

const (
	RequestIdHeader = "X-Request-Id"
	RequestIdKey    = "requestId"
)

// Log tags each request with a request id and writes one access log entry
// after the handler returns.
func Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(RequestIdKey, requestId)
		c.Header(RequestIdHeader, requestId)

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		stop := time.Since(start)
		latency := int(math.Ceil(float64(stop.Nanoseconds()) / 1000.0))
		statusCode := c.Writer.Status()
		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}

		entry := logger.WithFields(logger.Fields{
			"hostname":   c.Request.Host,
			"statusCode": statusCode,
			"latency":    latency, // µs
			"clientIp":   c.ClientIP(),
			"method":     c.Request.Method,
			"path":       path,
			"referer":    c.Request.Referer(),
			"dataLength": dataLength,
			"userAgent":  c.Request.UserAgent(),
			"requestId":  requestId,
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		} else {
			msg := ""
			if statusCode > 499 {
				entry.Error(msg)
			} else if statusCode > 399 {
				entry.Warn(msg)
			} else {
				entry.Info(msg)
			}
		}
	}
}
