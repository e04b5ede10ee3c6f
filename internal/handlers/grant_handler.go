package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GrantHandler handles granting object HTTP requests (sales orders and
// administrative point grants)
type GrantHandler struct {
	grantingService *services.GrantingService
}

// NewGrantHandler creates a new GrantHandler
func NewGrantHandler(grantingService *services.GrantingService) *GrantHandler {
	return &GrantHandler{
		grantingService: grantingService,
	}
}

type createSalesOrderRequest struct {
	OrganisationAccountID string `json:"organisationAccountId" binding:"required"`
	CartID                string `json:"cartId"`
	NumberOfPoints        int    `json:"numberOfPoints" binding:"required"`
}

type createPointGrantRequest struct {
	OrganisationAccountID string `json:"organisationAccountId" binding:"required"`
	NumberOfPoints        int    `json:"numberOfPoints" binding:"required"`
	Note                  string `json:"note"`
}

// CreateSalesOrder handles POST /sales-orders
func (h *GrantHandler) CreateSalesOrder(c *gin.Context) {
	var req createSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID, err := primitive.ObjectIDFromHex(req.OrganisationAccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID format"})
		return
	}

	order := &models.SalesOrder{
		OrganisationAccountID: accountID,
		NumberOfPoints:        req.NumberOfPoints,
	}
	if req.CartID != "" {
		cartID, err := primitive.ObjectIDFromHex(req.CartID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID format"})
			return
		}
		order.CartID = cartID
	}

	if err := h.grantingService.CreateSalesOrder(c.Request.Context(), order); err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sales order: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// CreatePointGrant handles POST /point-grants
func (h *GrantHandler) CreatePointGrant(c *gin.Context) {
	var req createPointGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID, err := primitive.ObjectIDFromHex(req.OrganisationAccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID format"})
		return
	}

	grant := &models.PointGrant{
		OrganisationAccountID: accountID,
		NumberOfPoints:        req.NumberOfPoints,
		Note:                  req.Note,
	}
	// Record the granting admin when the request is authenticated
	if userID, ok := c.Get("userID"); ok {
		if sub, ok := userID.(string); ok {
			if id, err := primitive.ObjectIDFromHex(sub); err == nil {
				grant.GrantedByID = id
			}
		}
	}

	if err := h.grantingService.CreatePointGrant(c.Request.Context(), grant); err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create point grant: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, grant)
}

// GrantForSalesOrder handles POST /sales-orders/:id/grant
func (h *GrantHandler) GrantForSalesOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.grantingService.GrantForSalesOrder(c.Request.Context(), id); err != nil {
		c.JSON(grantErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Points granted for sales order"})
}

// GrantForPointGrant handles POST /point-grants/:id/grant
func (h *GrantHandler) GrantForPointGrant(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.grantingService.GrantForPointGrant(c.Request.Context(), id); err != nil {
		c.JSON(grantErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Points granted"})
}

func grantErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
