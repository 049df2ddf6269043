package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	HeaderRequestID        = "X-Request-ID"
	GinContextKeyRequestID = "requestID"
)

// RequestIDMiddleware keeps a caller supplied X-Request-ID or mints one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func GetRequestIDFromGinContext(c *gin.Context) string {
	return c.GetString(GinContextKeyRequestID)
}

func AccessLogMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", GetRequestIDFromGinContext(c)),
		)
	}
}

// ErrorMiddleware renders the last error a handler attached as
// {"message": ...}. A handler may attach an int status via Meta, used when
// the error is neither not-found nor invalid input.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		fallback, _ := last.Meta.(int)
		status := apperror.ToHTTPStatus(last.Err, fallback)
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("route", c.FullPath()),
			zap.String("request_id", GetRequestIDFromGinContext(c)),
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", last.Err, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.Error(last.Err))...)
		}

		c.JSON(status, gin.H{"message": apperror.Message(last.Err)})
	}
}
