package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService    *services.CartService
	accountService *services.AccountService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *services.CartService, accountService *services.AccountService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		accountService: accountService,
	}
}

type priceCartRequest struct {
	OrganisationAccountID string              `json:"organisationAccountId" binding:"required"`
	CreatorID             string              `json:"creatorId" binding:"required"`
	NumberOfPoints        int                 `json:"numberOfPoints" binding:"required"`
	CurrencyOfPayment     models.CurrencyType `json:"currencyOfPayment" binding:"required"`
	PaymentType           models.PaymentType  `json:"paymentType" binding:"required"`
}

func (h *CartHandler) bindPriceRequest(c *gin.Context) (*models.OrganisationAccount, primitive.ObjectID, *priceCartRequest, bool) {
	var req priceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, primitive.NilObjectID, nil, false
	}

	accountID, err := primitive.ObjectIDFromHex(req.OrganisationAccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID format"})
		return nil, primitive.NilObjectID, nil, false
	}
	creatorID, err := primitive.ObjectIDFromHex(req.CreatorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID format"})
		return nil, primitive.NilObjectID, nil, false
	}
	if !req.PaymentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment type"})
		return nil, primitive.NilObjectID, nil, false
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found: " + err.Error()})
		return nil, primitive.NilObjectID, nil, false
	}
	return account, creatorID, &req, true
}

func cartErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrUnsupportedCurrency):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNoApplicablePricing):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PriceCart handles POST /carts/price: computes a quote without persisting it
func (h *CartHandler) PriceCart(c *gin.Context) {
	account, creatorID, req, ok := h.bindPriceRequest(c)
	if !ok {
		return
	}

	cart, err := h.cartService.PriceCart(c.Request.Context(), account, creatorID, req.NumberOfPoints, req.CurrencyOfPayment, req.PaymentType)
	if err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// CreateCart handles POST /carts: prices and persists a cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	account, creatorID, req, ok := h.bindPriceRequest(c)
	if !ok {
		return
	}

	cart, err := h.cartService.CreateCart(c.Request.Context(), account, creatorID, req.NumberOfPoints, req.CurrencyOfPayment, req.PaymentType)
	if err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cart)
}

// GetCartByID handles GET /carts/:id
func (h *CartHandler) GetCartByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	cart, err := h.cartService.GetCartByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GetCartsByAccount handles GET /carts/account/:accountId
func (h *CartHandler) GetCartsByAccount(c *gin.Context) {
	accountID, err := primitive.ObjectIDFromHex(c.Param("accountId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID format"})
		return
	}

	carts, err := h.cartService.GetCartsByAccount(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get carts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, carts)
}

// DeleteCart handles DELETE /carts/:id
func (h *CartHandler) DeleteCart(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if !h.cartService.DeleteCart(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart deleted successfully"})
}
