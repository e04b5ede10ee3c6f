package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// OrganisationService handles organisation CRUD
type OrganisationService struct {
	organisationRepo repositories.OrganisationRepository
}

// NewOrganisationService creates a new OrganisationService
func NewOrganisationService(organisationRepo repositories.OrganisationRepository) *OrganisationService {
	return &OrganisationService{
		organisationRepo: organisationRepo,
	}
}

// CreateOrganisation creates a new organisation
func (s *OrganisationService) CreateOrganisation(ctx context.Context, username, name string) (*models.Organisation, error) {
	organisation := &models.Organisation{
		Username: username,
		Name:     name,
	}
	if err := s.organisationRepo.Create(ctx, organisation); err != nil {
		slog.Error("Failed to create organisation", "error", err, "username", username)
		return nil, fmt.Errorf("%w: create organisation: %v", ErrPersistence, err)
	}
	return organisation, nil
}

// GetOrganisationByID retrieves an organisation by ID
func (s *OrganisationService) GetOrganisationByID(ctx context.Context, id primitive.ObjectID) (*models.Organisation, error) {
	organisation, err := s.organisationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: organisation %s", ErrNotFound, id.Hex())
		}
		return nil, err
	}
	return organisation, nil
}

// GetAllOrganisations retrieves organisations with pagination
func (s *OrganisationService) GetAllOrganisations(ctx context.Context, page, limit int) ([]*models.Organisation, error) {
	return s.organisationRepo.FindAll(ctx, page, limit)
}

// UpdateOrganisation renames an organisation. Returns nil and logs when the
// organisation does not exist; callers check the returned value.
func (s *OrganisationService) UpdateOrganisation(ctx context.Context, id primitive.ObjectID, name string) (*models.Organisation, error) {
	organisation, err := s.organisationRepo.FindByID(ctx, id)
	if err != nil {
		slog.Error("Failed to update organisation", "error", err, "organisationId", id.Hex())
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: organisation %s", ErrNotFound, id.Hex())
		}
		return nil, err
	}

	organisation.Name = name
	if err := s.organisationRepo.Update(ctx, organisation); err != nil {
		slog.Error("Failed to update organisation", "error", err, "organisationId", id.Hex())
		return nil, fmt.Errorf("%w: update organisation: %v", ErrPersistence, err)
	}
	return organisation, nil
}

// DeleteOrganisation deletes an organisation. Returns false and logs when the
// organisation does not exist.
func (s *OrganisationService) DeleteOrganisation(ctx context.Context, id primitive.ObjectID) bool {
	if err := s.organisationRepo.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete organisation", "error", err, "organisationId", id.Hex())
		return false
	}
	return true
}
