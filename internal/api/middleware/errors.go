// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docskin/internal/core/docdb"
	domainerrors "github.com/unifiedui/docskin/internal/domain/errors"
	"github.com/unifiedui/docskin/internal/services/skin"
)

// ErrorMiddleware handles error recovery and formatting.
type ErrorMiddleware struct{}

// NewErrorMiddleware creates a new ErrorMiddleware.
func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Recovery returns a gin middleware that recovers from panics.
func (m *ErrorMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetRequestLogger(c)
				logger.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Code:    domainerrors.ErrCodeInternal,
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ToDomainError maps facade and driver errors onto HTTP-facing domain errors.
// operation names what was being attempted, e.g. "find documents". Domain
// errors pass through unchanged.
func ToDomainError(operation string, err error) *domainerrors.DomainError {
	if domainErr, ok := domainerrors.GetDomainError(err); ok {
		return domainErr
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, skin.ErrMethodNotBound):
		return &domainerrors.DomainError{
			Code:       domainerrors.ErrCodeNotFound,
			Message:    "method not bound",
			Details:    err.Error(),
			HTTPStatus: http.StatusNotFound,
			Err:        err,
		}
	case errors.Is(err, skin.ErrInvalidArguments):
		return domainerrors.NewBadRequestError("invalid method arguments", err.Error())
	case errors.Is(err, docdb.ErrNoDocuments):
		return domainerrors.NewNotFoundError("document", err.Error())
	case errors.As(err, &tooLarge):
		return domainerrors.NewPayloadTooLargeError(tooLarge.Limit)
	case errors.Is(err, context.DeadlineExceeded):
		return domainerrors.NewTimeoutError(operation, err)
	default:
		return domainerrors.NewInternalError("failed to "+operation, err)
	}
}

// HandleError maps err onto a domain error and sends it as the response.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	domainErr := ToDomainError("handle request", err)
	if domainErr.HTTPStatus >= http.StatusInternalServerError {
		logger := GetRequestLogger(c)
		logger.Error().Err(err).Str("code", domainErr.Code).Msg("request failed")
	}

	c.AbortWithStatusJSON(domainErr.HTTPStatus, ErrorResponse{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Details: domainErr.Details,
	})
}

// NotFound returns a 404 handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    domainerrors.ErrCodeNotFound,
			Message: "resource not found",
			Details: c.Request.URL.Path,
		})
	}
}

// MethodNotAllowed returns a 405 handler.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method not allowed",
			Details: c.Request.Method,
		})
	}
}
