package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "request_id"
)

// RequestID reuses an incoming X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger logs every request and turns panics into a 500 envelope.
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("panic",
					"request_id", c.GetString(ContextRequestID),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", fmt.Sprintf("%v", recovered),
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL",
						"message": "Internal server error",
					},
				})
				return
			}
			logRequest(logger, c, start)
		}()

		c.Next()
	}
}

func logRequest(logger *log.Logger, c *gin.Context, start time.Time) {
	status := c.Writer.Status()
	kv := []any{
		"request_id", c.GetString(ContextRequestID),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	}
	if uid := UserID(c); uid != 0 {
		kv = append(kv, "user_id", uid)
	}
	if len(c.Errors) > 0 {
		kv = append(kv, "error", c.Errors.String())
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request", kv...)
	case status >= http.StatusBadRequest:
		logger.Warn("request", kv...)
	default:
		logger.Info("request", kv...)
	}
}
