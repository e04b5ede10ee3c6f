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

// CreditService exposes administrative operations on the credit ledger.
// Normal crediting goes through AccountService.GrantPoints; these operations
// exist for administration and correction.
type CreditService struct {
	creditRepo     repositories.CreditRepository
	accountService *AccountService
}

// NewCreditService creates a new CreditService
func NewCreditService(creditRepo repositories.CreditRepository, accountService *AccountService) *CreditService {
	return &CreditService{
		creditRepo:     creditRepo,
		accountService: accountService,
	}
}

// CreateCredit appends a credit to an account's ledger
func (s *CreditService) CreateCredit(ctx context.Context, accountID primitive.ObjectID, numberOfPoints int, typeOfPoints models.PointType, creditReason models.CreditReason) (*models.Credit, error) {
	if numberOfPoints <= 0 {
		return nil, fmt.Errorf("%w: number of points must be positive, got %d", ErrInvalidQuantity, numberOfPoints)
	}
	credit := &models.Credit{
		OrganisationAccountID: accountID,
		NumberOfPoints:        numberOfPoints,
		TypeOfPoints:          typeOfPoints,
		CreditReason:          creditReason,
	}
	if err := s.creditRepo.Create(ctx, credit); err != nil {
		slog.Error("Failed to create credit", "error", err, "accountId", accountID.Hex())
		return nil, fmt.Errorf("%w: create credit: %v", ErrPersistence, err)
	}
	return credit, nil
}

// GetCreditsByAccount lists an account's ledger entries, newest first
func (s *CreditService) GetCreditsByAccount(ctx context.Context, accountID primitive.ObjectID) ([]*models.Credit, error) {
	return s.creditRepo.FindByAccountID(ctx, accountID)
}

// UpdateCredit persists an edited credit and recalculates the owning
// account's balances, since an edited point amount invalidates the cached
// balances.
func (s *CreditService) UpdateCredit(ctx context.Context, credit *models.Credit) (*models.Credit, error) {
	if credit.NumberOfPoints <= 0 {
		return nil, fmt.Errorf("%w: number of points must be positive, got %d", ErrInvalidQuantity, credit.NumberOfPoints)
	}
	if err := s.creditRepo.Update(ctx, credit); err != nil {
		slog.Error("Failed to update credit", "error", err, "creditId", credit.ID.Hex())
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: credit %s", ErrNotFound, credit.ID.Hex())
		}
		return nil, fmt.Errorf("%w: update credit: %v", ErrPersistence, err)
	}

	account, err := s.accountService.GetAccountByID(ctx, credit.OrganisationAccountID)
	if err != nil {
		return nil, err
	}
	if err := s.accountService.RecalculateBalances(ctx, account); err != nil {
		return nil, err
	}
	return credit, nil
}

// DeleteCredit removes a credit from the ledger. Returns false and logs when
// the id does not exist. Deletion deliberately does not cascade into balance
// recalculation: callers that delete historical credits must invoke
// RecalculateBalances themselves before the stored balances are read again.
func (s *CreditService) DeleteCredit(ctx context.Context, id primitive.ObjectID) bool {
	if err := s.creditRepo.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete credit", "error", err, "creditId", id.Hex())
		return false
	}
	slog.Info("Credit deleted; stored balances unchanged until recalculation", "creditId", id.Hex())
	return true
}
