package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openunited/commerce-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganisationHandler handles organisation-related HTTP requests
type OrganisationHandler struct {
	organisationService *services.OrganisationService
}

// NewOrganisationHandler creates a new OrganisationHandler
func NewOrganisationHandler(organisationService *services.OrganisationService) *OrganisationHandler {
	return &OrganisationHandler{
		organisationService: organisationService,
	}
}

type createOrganisationRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type updateOrganisationRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateOrganisation handles POST /organisations
func (h *OrganisationHandler) CreateOrganisation(c *gin.Context) {
	var req createOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	organisation, err := h.organisationService.CreateOrganisation(c.Request.Context(), req.Username, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organisation: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, organisation)
}

// GetOrganisationByID handles GET /organisations/:id
func (h *OrganisationHandler) GetOrganisationByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	organisation, err := h.organisationService.GetOrganisationByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organisation not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, organisation)
}

// GetAllOrganisations handles GET /organisations
func (h *OrganisationHandler) GetAllOrganisations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	organisations, err := h.organisationService.GetAllOrganisations(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organisations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, organisations)
}

// UpdateOrganisation handles PUT /organisations/:id
func (h *OrganisationHandler) UpdateOrganisation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req updateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	organisation, err := h.organisationService.UpdateOrganisation(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organisation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, organisation)
}

// DeleteOrganisation handles DELETE /organisations/:id
func (h *OrganisationHandler) DeleteOrganisation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if !h.organisationService.DeleteOrganisation(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organisation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Organisation deleted successfully"})
}
