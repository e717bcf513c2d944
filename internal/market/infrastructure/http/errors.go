package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.AccountNotFoundError{}), errors.Is(err, &domain.ArticleNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InvalidAmountError{}), errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientFundsError{}), errors.Is(err, &domain.ArticleAlreadySoldError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.NotOwnerError{}):
		c.JSON(http.StatusForbidden, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
}
