package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingHandler handles pricing table HTTP requests
type PricingHandler struct {
	pricingService *services.PricingService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(pricingService *services.PricingService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

type createPriceRequest struct {
	ApplicableFromDate          time.Time `json:"applicableFromDate" binding:"required"`
	USDPointInboundPriceInCents int64     `json:"usdPointInboundPriceInCents" binding:"required"`
	EURPointInboundPriceInCents int64     `json:"eurPointInboundPriceInCents" binding:"required"`
	GBPPointInboundPriceInCents int64     `json:"gbpPointInboundPriceInCents" binding:"required"`
}

// CreatePrice handles POST /pricing
func (h *PricingHandler) CreatePrice(c *gin.Context) {
	var req createPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price := &models.PointPriceConfiguration{
		ApplicableFromDate:          req.ApplicableFromDate,
		USDPointInboundPriceInCents: req.USDPointInboundPriceInCents,
		EURPointInboundPriceInCents: req.EURPointInboundPriceInCents,
		GBPPointInboundPriceInCents: req.GBPPointInboundPriceInCents,
	}
	if err := h.pricingService.CreatePrice(c.Request.Context(), price); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pricing row: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, price)
}

// GetAllPrices handles GET /pricing
func (h *PricingHandler) GetAllPrices(c *gin.Context) {
	prices, err := h.pricingService.GetAllPrices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pricing rows: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, prices)
}

// GetPriceByID handles GET /pricing/:id
func (h *PricingHandler) GetPriceByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	price, err := h.pricingService.GetPriceByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing row not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, price)
}

// ResolvePrice handles GET /pricing/resolve?currency=USD: returns the price
// per point effective today for the given currency
func (h *PricingHandler) ResolvePrice(c *gin.Context) {
	currency := models.CurrencyType(c.Query("currency"))

	pricePerPoint, err := h.pricingService.ResolvePricePerPoint(c.Request.Context(), currency, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedCurrency):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoApplicablePricing):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve price: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"currency": currency, "pricePerPointInCents": pricePerPoint})
}
