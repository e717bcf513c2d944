package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/article-market/internal/pkg/jwt"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authHeaderName = "Authorization"
)

func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse account token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.ClaimsContextKey, claims.AccountID)
		c.Next()
	}
}

// callerID returns the account authenticated by the middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(jwt.ClaimsContextKey)
	if !exists {
		return uuid.Nil, false
	}

	accountID, ok := value.(uuid.UUID)
	if !ok || accountID == uuid.Nil {
		return uuid.Nil, false
	}

	return accountID, true
}
