package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
)

func seedPrice(t *testing.T, repo *fakePointPriceRepo, applicableFrom, createdAt time.Time, usd, eur, gbp int64) *models.PointPriceConfiguration {
	t.Helper()
	price := &models.PointPriceConfiguration{
		ApplicableFromDate:          applicableFrom,
		USDPointInboundPriceInCents: usd,
		EURPointInboundPriceInCents: eur,
		GBPPointInboundPriceInCents: gbp,
		CreatedAt:                   createdAt,
	}
	if err := repo.Create(context.Background(), price); err != nil {
		t.Fatalf("seed price: %v", err)
	}
	return price
}

func TestResolvePricePerPoint(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakePointPriceRepo()
	service := NewPricingService(repo)

	// Not yet effective, must never win
	seedPrice(t, repo, now.Add(24*time.Hour), now.Add(-1*time.Hour), 999, 999, 999)
	// Effective, older creation
	seedPrice(t, repo, now.Add(-48*time.Hour), now.Add(-48*time.Hour), 100, 90, 80)
	// Effective, newest creation: wins
	seedPrice(t, repo, now.Add(-24*time.Hour), now.Add(-2*time.Hour), 250, 230, 210)

	cases := []struct {
		currency models.CurrencyType
		want     int64
	}{
		{models.CurrencyUSD, 250},
		{models.CurrencyEUR, 230},
		{models.CurrencyGBP, 210},
	}
	for _, tc := range cases {
		got, err := service.ResolvePricePerPoint(context.Background(), tc.currency, now)
		if err != nil {
			t.Fatalf("ResolvePricePerPoint(%s): %v", tc.currency, err)
		}
		if got != tc.want {
			t.Errorf("ResolvePricePerPoint(%s) = %d, want %d", tc.currency, got, tc.want)
		}
	}
}

func TestResolvePricePerPointBackdatedCorrectionWins(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakePointPriceRepo()
	service := NewPricingService(repo)

	// Original row effective a month ago
	seedPrice(t, repo, now.Add(-30*24*time.Hour), now.Add(-30*24*time.Hour), 100, 100, 100)
	// Correction created yesterday but back-dated before the original
	seedPrice(t, repo, now.Add(-60*24*time.Hour), now.Add(-24*time.Hour), 150, 150, 150)

	got, err := service.ResolvePricePerPoint(context.Background(), models.CurrencyUSD, now)
	if err != nil {
		t.Fatalf("ResolvePricePerPoint: %v", err)
	}
	if got != 150 {
		t.Errorf("ResolvePricePerPoint = %d, want the back-dated correction 150", got)
	}
}

func TestResolvePricePerPointUnsupportedCurrency(t *testing.T) {
	repo := newFakePointPriceRepo()
	service := NewPricingService(repo)
	seedPrice(t, repo, time.Now().Add(-time.Hour), time.Now(), 100, 100, 100)

	_, err := service.ResolvePricePerPoint(context.Background(), models.CurrencyType("NGN"), time.Now())
	if !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("ResolvePricePerPoint error = %v, want ErrUnsupportedCurrency", err)
	}
}

func TestResolvePricePerPointNoApplicableRow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakePointPriceRepo()
	service := NewPricingService(repo)

	// Empty table
	_, err := service.ResolvePricePerPoint(context.Background(), models.CurrencyUSD, now)
	if !errors.Is(err, ErrNoApplicablePricing) {
		t.Fatalf("ResolvePricePerPoint on empty table error = %v, want ErrNoApplicablePricing", err)
	}

	// Only future rows
	seedPrice(t, repo, now.Add(24*time.Hour), now, 100, 100, 100)
	_, err = service.ResolvePricePerPoint(context.Background(), models.CurrencyUSD, now)
	if !errors.Is(err, ErrNoApplicablePricing) {
		t.Fatalf("ResolvePricePerPoint with only future rows error = %v, want ErrNoApplicablePricing", err)
	}
}

func TestGetPriceByIDNotFound(t *testing.T) {
	repo := newFakePointPriceRepo()
	service := NewPricingService(repo)

	_, err := service.GetPriceByID(context.Background(), newObjectID(t))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetPriceByID error = %v, want ErrNotFound", err)
	}
}
