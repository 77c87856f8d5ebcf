// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RequestIDHeader carries the request id in and out of the gateway.
	RequestIDHeader = "X-Request-ID"

	requestIDKey     = "request_id"
	loggerKey        = "logger"
	documentCountKey = "documents"
)

// LoggingMiddleware handles request logging.
type LoggingMiddleware struct {
	logger zerolog.Logger
}

// NewLoggingMiddleware creates a new LoggingMiddleware.
func NewLoggingMiddleware() *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: log.Logger,
	}
}

// NewLoggingMiddlewareWithLogger creates a new LoggingMiddleware with a custom logger.
func NewLoggingMiddlewareWithLogger(logger zerolog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger,
	}
}

// Logger returns a gin middleware that logs one line per completed request.
// Requests on a collection carry its name, and streams report how many
// documents they delivered.
func (m *LoggingMiddleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = m.logger.Error()
		case status >= 400:
			event = m.logger.Warn()
		default:
			event = m.logger.Info()
		}

		if name := c.Param("name"); name != "" {
			event = event.Str("collection", name)
		}
		if n, ok := c.Get(documentCountKey); ok {
			event = event.Int("documents", n.(int))
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Int("body_size", c.Writer.Size()).
			Msg("request completed")
	}
}

// RequestLogger assigns the request id and a request-scoped logger. The
// logger is also attached to the request context so zerolog.Ctx finds it
// below the handler.
func (m *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		lctx := m.logger.With().Str("request_id", requestID)
		for _, p := range c.Params {
			switch p.Key {
			case "name":
				lctx = lctx.Str("collection", p.Value)
			case "id":
				lctx = lctx.Str("document_id", p.Value)
			case "method":
				lctx = lctx.Str("bound_method", p.Value)
			}
		}
		requestLogger := lctx.Logger()

		c.Set(loggerKey, &requestLogger)
		c.Request = c.Request.WithContext(requestLogger.WithContext(c.Request.Context()))

		c.Next()
	}
}

// GetRequestLogger retrieves the request-scoped logger from context, falling
// back to the global logger.
func GetRequestLogger(c *gin.Context) *zerolog.Logger {
	if logger, exists := c.Get(loggerKey); exists {
		return logger.(*zerolog.Logger)
	}
	return &log.Logger
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// SetDocumentCount records how many documents a handler delivered, for the
// completion log line.
func SetDocumentCount(c *gin.Context, n int) {
	c.Set(documentCountKey, n)
}
