package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ArticleIDKey = "articleId"
)

type createArticleRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Price *int64 `json:"price" binding:"required"`
}

type ArticleHandler struct {
	articles  ArticleService
	purchaser Purchaser
}

func NewArticleHandler(articles ArticleService, purchaser Purchaser) *ArticleHandler {
	return &ArticleHandler{
		articles:  articles,
		purchaser: purchaser,
	}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var body createArticleRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	created, err := h.articles.CreateArticle(c.Request.Context(), ownerID, body.Name, *body.Price)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, ok := articleIDParam(c)
	if !ok {
		return
	}

	article, err := h.articles.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	articleID, ok := articleIDParam(c)
	if !ok {
		return
	}

	if err := h.articles.DeleteArticle(c.Request.Context(), actorID, articleID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) Buy(c *gin.Context) {
	buyerID, ok := callerID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	articleID, ok := articleIDParam(c)
	if !ok {
		return
	}

	outcome, err := h.purchaser.Purchase(c.Request.Context(), articleID, buyerID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func articleIDParam(c *gin.Context) (uuid.UUID, bool) {
	articleID, err := uuid.Parse(c.Param(ArticleIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid article id"})
		return uuid.Nil, false
	}

	return articleID, true
}
