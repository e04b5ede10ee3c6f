package services

import (
	"context"
	"errors"
	"testing"

	"github.com/openunited/commerce-backend/internal/models"
)

func newGrantingFixture(t *testing.T) (*GrantingService, *fakeAccountRepo, *fakeCreditRepo, *fakeSalesOrderRepo, *fakePointGrantRepo) {
	t.Helper()
	accountRepo := newFakeAccountRepo()
	creditRepo := newFakeCreditRepo()
	orderRepo := newFakeSalesOrderRepo()
	grantRepo := newFakePointGrantRepo()
	accountService := NewAccountService(accountRepo, creditRepo, &fakeTxnRunner{})
	service := NewGrantingService(accountService, orderRepo, grantRepo)
	return service, accountRepo, creditRepo, orderRepo, grantRepo
}

func TestGrantForSalesOrder(t *testing.T) {
	service, accountRepo, creditRepo, orderRepo, _ := newGrantingFixture(t)
	account := newTestAccount(t, accountRepo)

	order := &models.SalesOrder{OrganisationAccountID: account.ID, NumberOfPoints: 200}
	if err := service.CreateSalesOrder(context.Background(), order); err != nil {
		t.Fatalf("CreateSalesOrder: %v", err)
	}

	if err := service.GrantForSalesOrder(context.Background(), order.ID); err != nil {
		t.Fatalf("GrantForSalesOrder: %v", err)
	}

	if len(creditRepo.credits) != 1 {
		t.Fatalf("ledger has %d credits, want 1", len(creditRepo.credits))
	}
	stored, err := accountRepo.FindByID(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.LiquidPointsBalance != 200 {
		t.Errorf("LiquidPointsBalance = %d, want 200", stored.LiquidPointsBalance)
	}

	// Replaying the grant must not issue a second credit
	if err := service.GrantForSalesOrder(context.Background(), order.ID); err != nil {
		t.Fatalf("replayed GrantForSalesOrder: %v", err)
	}
	if len(creditRepo.credits) != 1 {
		t.Errorf("ledger has %d credits after replay, want 1", len(creditRepo.credits))
	}

	granted, err := orderRepo.FindByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if granted.OrganisationAccountCreditID == nil {
		t.Error("order not marked granted")
	}
}

func TestGrantForPointGrant(t *testing.T) {
	service, accountRepo, creditRepo, _, grantRepo := newGrantingFixture(t)
	account := newTestAccount(t, accountRepo)

	grant := &models.PointGrant{OrganisationAccountID: account.ID, NumberOfPoints: 25, Note: "launch bonus"}
	if err := service.CreatePointGrant(context.Background(), grant); err != nil {
		t.Fatalf("CreatePointGrant: %v", err)
	}

	if err := service.GrantForPointGrant(context.Background(), grant.ID); err != nil {
		t.Fatalf("GrantForPointGrant: %v", err)
	}

	if len(creditRepo.credits) != 1 {
		t.Fatalf("ledger has %d credits, want 1", len(creditRepo.credits))
	}
	if creditRepo.credits[0].TypeOfPoints != models.PointTypeNonliquid {
		t.Errorf("credit type = %s, want NONLIQUID", creditRepo.credits[0].TypeOfPoints)
	}

	stored, err := accountRepo.FindByID(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.NonliquidPointsBalance != 25 {
		t.Errorf("NonliquidPointsBalance = %d, want 25", stored.NonliquidPointsBalance)
	}

	marked, err := grantRepo.FindByID(context.Background(), grant.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if marked.OrganisationAccountCreditID == nil {
		t.Error("grant not marked granted")
	}
}

func TestGrantForMissingGrantingObject(t *testing.T) {
	service, _, _, _, _ := newGrantingFixture(t)

	if err := service.GrantForSalesOrder(context.Background(), newObjectID(t)); !errors.Is(err, ErrNotFound) {
		t.Errorf("GrantForSalesOrder error = %v, want ErrNotFound", err)
	}
	if err := service.GrantForPointGrant(context.Background(), newObjectID(t)); !errors.Is(err, ErrNotFound) {
		t.Errorf("GrantForPointGrant error = %v, want ErrNotFound", err)
	}
}

func TestCreateGrantingObjectsRejectNonPositiveQuantity(t *testing.T) {
	service, accountRepo, _, _, _ := newGrantingFixture(t)
	account := newTestAccount(t, accountRepo)

	order := &models.SalesOrder{OrganisationAccountID: account.ID, NumberOfPoints: 0}
	if err := service.CreateSalesOrder(context.Background(), order); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("CreateSalesOrder error = %v, want ErrInvalidQuantity", err)
	}

	grant := &models.PointGrant{OrganisationAccountID: account.ID, NumberOfPoints: -3}
	if err := service.CreatePointGrant(context.Background(), grant); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("CreatePointGrant error = %v, want ErrInvalidQuantity", err)
	}
}
