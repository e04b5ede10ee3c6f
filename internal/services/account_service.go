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

// AccountService handles organisation account bookkeeping: account CRUD,
// credit issuance for granting objects, and balance recalculation from the
// credit ledger.
type AccountService struct {
	accountRepo repositories.AccountRepository
	creditRepo  repositories.CreditRepository
	txn         TransactionRunner
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo repositories.AccountRepository, creditRepo repositories.CreditRepository, txn TransactionRunner) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		creditRepo:  creditRepo,
		txn:         txn,
	}
}

// CreateAccount creates a new organisation account
func (s *AccountService) CreateAccount(ctx context.Context, account *models.OrganisationAccount) error {
	if err := s.accountRepo.Create(ctx, account); err != nil {
		slog.Error("Failed to create organisation account", "error", err, "organisationId", account.OrganisationID.Hex())
		return fmt.Errorf("%w: create account: %v", ErrPersistence, err)
	}
	return nil
}

// GetAccountByID retrieves an account by ID
func (s *AccountService) GetAccountByID(ctx context.Context, id primitive.ObjectID) (*models.OrganisationAccount, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: organisation account %s", ErrNotFound, id.Hex())
		}
		return nil, err
	}
	return account, nil
}

// UpdateAccount updates an account. Returns nil and logs when the account
// does not exist; callers check the returned value.
func (s *AccountService) UpdateAccount(ctx context.Context, account *models.OrganisationAccount) (*models.OrganisationAccount, error) {
	if err := s.accountRepo.Update(ctx, account); err != nil {
		slog.Error("Failed to update organisation account", "error", err, "accountId", account.ID.Hex())
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: organisation account %s", ErrNotFound, account.ID.Hex())
		}
		return nil, fmt.Errorf("%w: update account: %v", ErrPersistence, err)
	}
	return account, nil
}

// DeleteAccount deletes an account. Returns false and logs when the account
// does not exist.
func (s *AccountService) DeleteAccount(ctx context.Context, id primitive.ObjectID) bool {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete organisation account", "error", err, "accountId", id.Hex())
		return false
	}
	return true
}

// GrantPoints issues the credit a granting object is entitled to, exactly
// once per granting object. The granter's kind selects the credit reason and
// point type: a sale grants liquid SALE points, anything else grants
// nonliquid GRANT points. If the granter already carries a credit reference
// the call is a no-op.
//
// Credit creation, balance recalculation and granted-marking run inside one
// transaction: on failure the granter is never marked granted and balances
// are not left recalculated. Concurrent calls for the same granting object
// are not serialized here; callers must not race grants on one object (two
// racing calls could both pass the existing-credit check).
func (s *AccountService) GrantPoints(ctx context.Context, account *models.OrganisationAccount, granter models.PointsGranter) error {
	creditReason := models.CreditReasonGrant
	typeOfPoints := models.PointTypeNonliquid
	if granter.GrantKind() == models.GrantKindSale {
		creditReason = models.CreditReasonSale
		typeOfPoints = models.PointTypeLiquid
	}

	if existing := granter.ExistingCreditID(); existing != nil {
		slog.Info("Points already granted for object, skipping",
			"accountId", account.ID.Hex(), "creditId", existing.Hex())
		return nil
	}

	points := granter.PointsToGrant()
	if points <= 0 {
		return fmt.Errorf("%w: granting object carries %d points", ErrInvalidQuantity, points)
	}

	err := s.txn.WithTransaction(ctx, func(ctx context.Context) error {
		credit := &models.Credit{
			OrganisationAccountID: account.ID,
			NumberOfPoints:        points,
			TypeOfPoints:          typeOfPoints,
			CreditReason:          creditReason,
		}
		if err := s.creditRepo.Create(ctx, credit); err != nil {
			return fmt.Errorf("%w: create credit: %v", ErrPersistence, err)
		}
		if err := s.RecalculateBalances(ctx, account); err != nil {
			return err
		}
		if err := granter.RecordCredit(ctx, credit.ID); err != nil {
			return fmt.Errorf("%w: mark points as granted: %v", ErrPersistence, err)
		}
		slog.Info("Points granted",
			"accountId", account.ID.Hex(), "creditId", credit.ID.Hex(),
			"points", points, "typeOfPoints", typeOfPoints, "reason", creditReason)
		return nil
	})
	if err != nil {
		slog.Error("Failed to grant points", "error", err, "accountId", account.ID.Hex())
		return err
	}
	return nil
}

// RecalculateBalances derives the account's balances from its credit ledger
// and persists them. For each point type the balance is the sum of ledger
// credits of that type minus debits; no debit-producing operation exists yet,
// so debits are zero. This is a full recompute, deterministic and idempotent,
// not an incremental delta.
func (s *AccountService) RecalculateBalances(ctx context.Context, account *models.OrganisationAccount) error {
	nonliquidCredits, err := s.creditRepo.SumPointsByType(ctx, account.ID, models.PointTypeNonliquid)
	if err != nil {
		return fmt.Errorf("%w: sum nonliquid credits for account %s: %v", ErrPersistence, account.ID.Hex(), err)
	}
	nonliquidDebits := int64(0)
	account.NonliquidPointsBalance = nonliquidCredits - nonliquidDebits

	liquidCredits, err := s.creditRepo.SumPointsByType(ctx, account.ID, models.PointTypeLiquid)
	if err != nil {
		return fmt.Errorf("%w: sum liquid credits for account %s: %v", ErrPersistence, account.ID.Hex(), err)
	}
	liquidDebits := int64(0)
	account.LiquidPointsBalance = liquidCredits - liquidDebits

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("%w: persist recalculated balances for account %s: %v", ErrPersistence, account.ID.Hex(), err)
	}
	return nil
}
