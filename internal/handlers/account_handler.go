package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountHandler handles organisation account HTTP requests
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

type createAccountRequest struct {
	OrganisationID         string `json:"organisationId" binding:"required"`
	LiquidPointsBalance    int64  `json:"liquidPointsBalance"`
	NonliquidPointsBalance int64  `json:"nonliquidPointsBalance"`
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	organisationID, err := primitive.ObjectIDFromHex(req.OrganisationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organisation ID format"})
		return
	}

	account := &models.OrganisationAccount{
		OrganisationID:         organisationID,
		LiquidPointsBalance:    req.LiquidPointsBalance,
		NonliquidPointsBalance: req.NonliquidPointsBalance,
	}
	if err := h.accountService.CreateAccount(c.Request.Context(), account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, account)
}

// GetAccountByID handles GET /accounts/:id
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount handles PUT /accounts/:id
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var account models.OrganisationAccount
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account.ID = id

	updated, err := h.accountService.UpdateAccount(c.Request.Context(), &account)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAccount handles DELETE /accounts/:id
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if !h.accountService.DeleteAccount(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// RecalculateBalances handles POST /accounts/:id/recalculate
func (h *AccountHandler) RecalculateBalances(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found: " + err.Error()})
		return
	}

	if err := h.accountService.RecalculateBalances(c.Request.Context(), account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate balances: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}
