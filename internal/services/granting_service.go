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

// GrantingService manages granting objects (sales orders, administrative
// grants) and triggers credit issuance for them through AccountService.
type GrantingService struct {
	accountService *AccountService
	salesOrderRepo repositories.SalesOrderRepository
	pointGrantRepo repositories.PointGrantRepository
}

// NewGrantingService creates a new GrantingService
func NewGrantingService(accountService *AccountService, salesOrderRepo repositories.SalesOrderRepository, pointGrantRepo repositories.PointGrantRepository) *GrantingService {
	return &GrantingService{
		accountService: accountService,
		salesOrderRepo: salesOrderRepo,
		pointGrantRepo: pointGrantRepo,
	}
}

// CreateSalesOrder records a completed point sale
func (s *GrantingService) CreateSalesOrder(ctx context.Context, order *models.SalesOrder) error {
	if order.NumberOfPoints <= 0 {
		return fmt.Errorf("%w: number of points must be positive, got %d", ErrInvalidQuantity, order.NumberOfPoints)
	}
	if err := s.salesOrderRepo.Create(ctx, order); err != nil {
		slog.Error("Failed to create sales order", "error", err, "accountId", order.OrganisationAccountID.Hex())
		return fmt.Errorf("%w: create sales order: %v", ErrPersistence, err)
	}
	return nil
}

// CreatePointGrant records an administrative grant
func (s *GrantingService) CreatePointGrant(ctx context.Context, grant *models.PointGrant) error {
	if grant.NumberOfPoints <= 0 {
		return fmt.Errorf("%w: number of points must be positive, got %d", ErrInvalidQuantity, grant.NumberOfPoints)
	}
	if err := s.pointGrantRepo.Create(ctx, grant); err != nil {
		slog.Error("Failed to create point grant", "error", err, "accountId", grant.OrganisationAccountID.Hex())
		return fmt.Errorf("%w: create point grant: %v", ErrPersistence, err)
	}
	return nil
}

// GrantForSalesOrder issues the sales order's credit, at most once
func (s *GrantingService) GrantForSalesOrder(ctx context.Context, orderID primitive.ObjectID) error {
	order, err := s.salesOrderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: sales order %s", ErrNotFound, orderID.Hex())
		}
		return fmt.Errorf("%w: load sales order: %v", ErrPersistence, err)
	}

	account, err := s.accountService.GetAccountByID(ctx, order.OrganisationAccountID)
	if err != nil {
		return err
	}
	return s.accountService.GrantPoints(ctx, account, NewSalesOrderGranter(order, s.salesOrderRepo))
}

// GrantForPointGrant issues the administrative grant's credit, at most once
func (s *GrantingService) GrantForPointGrant(ctx context.Context, grantID primitive.ObjectID) error {
	grant, err := s.pointGrantRepo.FindByID(ctx, grantID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: point grant %s", ErrNotFound, grantID.Hex())
		}
		return fmt.Errorf("%w: load point grant: %v", ErrPersistence, err)
	}

	account, err := s.accountService.GetAccountByID(ctx, grant.OrganisationAccountID)
	if err != nil {
		return err
	}
	return s.accountService.GrantPoints(ctx, account, NewPointGrantGranter(grant, s.pointGrantRepo))
}
