package http

import (
	"net/http"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccountIDKey = "accountId"
)

type createAccountRequestBody struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required,oneof=buyer seller"`
}

type rechargeRequestBody struct {
	Amount *int64 `json:"amount" binding:"required"`
}

type AccountHandler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{
		service: service,
	}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var body createAccountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.service.CreateAccount(c.Request.Context(), body.Name, domain.Role(body.Role))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param(AccountIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid account id"})
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) Recharge(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var body rechargeRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	balance, err := h.service.Recharge(c.Request.Context(), accountID, *body.Amount)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
