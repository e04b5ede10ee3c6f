package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreditHandler handles credit ledger HTTP requests
type CreditHandler struct {
	creditService *services.CreditService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(creditService *services.CreditService) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

type createCreditRequest struct {
	OrganisationAccountID string              `json:"organisationAccountId" binding:"required"`
	NumberOfPoints        int                 `json:"numberOfPoints" binding:"required"`
	TypeOfPoints          models.PointType    `json:"typeOfPoints" binding:"required"`
	CreditReason          models.CreditReason `json:"creditReason" binding:"required"`
}

// CreateCredit handles POST /credits
func (h *CreditHandler) CreateCredit(c *gin.Context) {
	var req createCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID, err := primitive.ObjectIDFromHex(req.OrganisationAccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID format"})
		return
	}

	credit, err := h.creditService.CreateCredit(c.Request.Context(), accountID, req.NumberOfPoints, req.TypeOfPoints, req.CreditReason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create credit: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, credit)
}

// GetCreditsByAccount handles GET /credits/account/:accountId
func (h *CreditHandler) GetCreditsByAccount(c *gin.Context) {
	accountID, err := primitive.ObjectIDFromHex(c.Param("accountId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID format"})
		return
	}

	credits, err := h.creditService.GetCreditsByAccount(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get credits: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, credits)
}

// UpdateCredit handles PUT /credits/:id
func (h *CreditHandler) UpdateCredit(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var credit models.Credit
	if err := c.ShouldBindJSON(&credit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	credit.ID = id

	updated, err := h.creditService.UpdateCredit(c.Request.Context(), &credit)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update credit: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCredit handles DELETE /credits/:id. Deleting a credit does not adjust
// the account's stored balances; callers must POST /accounts/:id/recalculate
// afterwards.
func (h *CreditHandler) DeleteCredit(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if !h.creditService.DeleteCredit(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Credit not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credit deleted; account balances remain unchanged until recalculation"})
}
