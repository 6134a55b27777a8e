package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	// TokenContextKey is a gin context key for the raw bearer token.
	TokenContextKey = "authToken"
)

// TokenParser resolves the subject of a session token.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			AbortWithError(c, domainErrors.ErrAuthRequired)
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
