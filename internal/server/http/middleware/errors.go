package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
	pkgAuth "github.com/polkiloo/careerpath/internal/pkg/auth"
	"github.com/polkiloo/careerpath/internal/server/http/dto"
)

const (
	msgInvalidRequest     = "Invalid request"
	msgDuplicateEmail     = "User already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgAuthRequired       = "Authorization token required"
	msgInvalidToken       = "Invalid token"
	msgTokenExpired       = "Token expired"
	msgUserNotFound       = "User not found"
	msgUnavailable        = "Service temporarily unavailable"
	msgInternal           = "An error occurred. Please try again."
)

// ErrorStatus translates a domain error into an HTTP status and a client-safe message.
func ErrorStatus(err error) (int, string) {
	var verr *domainErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusBadRequest, msgInvalidRequest
	case errors.Is(err, domainErrors.ErrDuplicateEmail):
		return http.StatusBadRequest, msgDuplicateEmail
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, domainErrors.ErrAuthRequired):
		return http.StatusUnauthorized, msgAuthRequired
	case errors.Is(err, pkgAuth.ErrTokenExpired):
		return http.StatusUnauthorized, msgTokenExpired
	case errors.Is(err, pkgAuth.ErrInvalidToken):
		return http.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, domainErrors.ErrUserNotFound):
		return http.StatusNotFound, msgUserNotFound
	case errors.Is(err, domainErrors.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, msgUnavailable
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// AbortWithError writes the translated error response and records err for request logging.
func AbortWithError(c *gin.Context, err error) {
	status, message := ErrorStatus(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: message})
}

// AbortWithMessage writes a JSON error body with an explicit status.
func AbortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: message})
}
