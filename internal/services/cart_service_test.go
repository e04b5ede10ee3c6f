package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
)

type stubPricingResolver struct {
	pricePerPoint int64
	err           error
}

func (s *stubPricingResolver) ResolvePricePerPoint(ctx context.Context, currency models.CurrencyType, asOf time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.pricePerPoint, nil
}

func TestPriceCartComputesTotals(t *testing.T) {
	cartRepo := newFakeCartRepo()
	service := NewCartService(cartRepo, &stubPricingResolver{pricePerPoint: 250})
	account := &models.OrganisationAccount{ID: newObjectID(t)}
	creatorID := newObjectID(t)

	cart, err := service.PriceCart(context.Background(), account, creatorID, 100, models.CurrencyUSD, models.PaymentTypeOnline)
	if err != nil {
		t.Fatalf("PriceCart: %v", err)
	}

	if cart.PricePerPointInCents != 250 {
		t.Errorf("PricePerPointInCents = %d, want 250", cart.PricePerPointInCents)
	}
	if cart.SubtotalInCents != 25000 {
		t.Errorf("SubtotalInCents = %d, want 25000", cart.SubtotalInCents)
	}
	if cart.SalesTaxInCents != 0 {
		t.Errorf("SalesTaxInCents = %d, want 0", cart.SalesTaxInCents)
	}
	if cart.TotalPayableInCents != 25000 {
		t.Errorf("TotalPayableInCents = %d, want 25000", cart.TotalPayableInCents)
	}
	if cart.OrganisationAccountID != account.ID {
		t.Errorf("OrganisationAccountID = %s, want %s", cart.OrganisationAccountID.Hex(), account.ID.Hex())
	}
	if cart.CreatorID != creatorID {
		t.Errorf("CreatorID = %s, want %s", cart.CreatorID.Hex(), creatorID.Hex())
	}

	// PriceCart must not persist anything
	if len(cartRepo.carts) != 0 {
		t.Errorf("repository holds %d carts after PriceCart, want 0", len(cartRepo.carts))
	}
}

func TestPriceCartRejectsNonPositiveQuantity(t *testing.T) {
	service := NewCartService(newFakeCartRepo(), &stubPricingResolver{pricePerPoint: 250})
	account := &models.OrganisationAccount{ID: newObjectID(t)}

	for _, points := range []int{0, -5} {
		_, err := service.PriceCart(context.Background(), account, newObjectID(t), points, models.CurrencyUSD, models.PaymentTypeOnline)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("PriceCart with %d points error = %v, want ErrInvalidQuantity", points, err)
		}
	}
}

func TestPriceCartPropagatesPricingErrors(t *testing.T) {
	for _, pricingErr := range []error{ErrUnsupportedCurrency, ErrNoApplicablePricing} {
		service := NewCartService(newFakeCartRepo(), &stubPricingResolver{err: pricingErr})
		account := &models.OrganisationAccount{ID: newObjectID(t)}

		_, err := service.PriceCart(context.Background(), account, newObjectID(t), 10, models.CurrencyUSD, models.PaymentTypeOnline)
		if !errors.Is(err, pricingErr) {
			t.Errorf("PriceCart error = %v, want %v", err, pricingErr)
		}
	}
}

func TestCreateCartPersistsPricedCart(t *testing.T) {
	cartRepo := newFakeCartRepo()
	service := NewCartService(cartRepo, &stubPricingResolver{pricePerPoint: 90})
	account := &models.OrganisationAccount{ID: newObjectID(t)}

	cart, err := service.CreateCart(context.Background(), account, newObjectID(t), 20, models.CurrencyEUR, models.PaymentTypeOffline)
	if err != nil {
		t.Fatalf("CreateCart: %v", err)
	}
	if cart.ID.IsZero() {
		t.Fatal("CreateCart returned cart without an ID")
	}

	stored, err := cartRepo.FindByID(context.Background(), cart.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.TotalPayableInCents != 1800 {
		t.Errorf("persisted TotalPayableInCents = %d, want 1800", stored.TotalPayableInCents)
	}
	if stored.CurrencyOfPayment != models.CurrencyEUR {
		t.Errorf("persisted currency = %s, want EUR", stored.CurrencyOfPayment)
	}
}

func TestEndToEndCartPricingAgainstPricingTable(t *testing.T) {
	now := time.Now()
	priceRepo := newFakePointPriceRepo()
	pricingService := NewPricingService(priceRepo)
	seedPrice(t, priceRepo, now.Add(-time.Hour), now.Add(-time.Hour), 250, 230, 210)

	service := NewCartService(newFakeCartRepo(), pricingService)
	account := &models.OrganisationAccount{ID: newObjectID(t)}

	cart, err := service.PriceCart(context.Background(), account, newObjectID(t), 100, models.CurrencyGBP, models.PaymentTypeOnline)
	if err != nil {
		t.Fatalf("PriceCart: %v", err)
	}
	if cart.TotalPayableInCents != 21000 {
		t.Errorf("TotalPayableInCents = %d, want 21000 (100 points at 210 cents)", cart.TotalPayableInCents)
	}
}

func TestDeleteCartReportsMissing(t *testing.T) {
	cartRepo := newFakeCartRepo()
	service := NewCartService(cartRepo, &stubPricingResolver{pricePerPoint: 1})

	if ok := service.DeleteCart(context.Background(), newObjectID(t)); ok {
		t.Error("DeleteCart = true for a missing cart, want false")
	}
}
