package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PricingService implements PricingResolver
var _ PricingResolver = (*PricingService)(nil)

// PricingService resolves point prices and maintains the pricing table.
// Pricing rows are normally pre-populated by the pricing administration
// workflow; resolution only reads them.
type PricingService struct {
	priceRepo repositories.PointPriceRepository
}

// NewPricingService creates a new PricingService
func NewPricingService(priceRepo repositories.PointPriceRepository) *PricingService {
	return &PricingService{
		priceRepo: priceRepo,
	}
}

// ResolvePricePerPoint returns the effective price per point in cents for the
// currency as of the given date. Among all rows whose effective date is on or
// before asOf, the most recently created row wins; creation order is the
// tie-break, so a back-dated correction takes precedence over earlier rows.
func (s *PricingService) ResolvePricePerPoint(ctx context.Context, currency models.CurrencyType, asOf time.Time) (int64, error) {
	if !currency.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}

	price, err := s.priceRepo.FindApplicable(ctx, asOf)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			slog.Error("No applicable pricing row", "asOf", asOf, "currency", currency)
			return 0, ErrNoApplicablePricing
		}
		slog.Error("Failed to query pricing table", "error", err, "asOf", asOf)
		return 0, fmt.Errorf("%w: query pricing table: %v", ErrPersistence, err)
	}

	switch currency {
	case models.CurrencyUSD:
		return price.USDPointInboundPriceInCents, nil
	case models.CurrencyEUR:
		return price.EURPointInboundPriceInCents, nil
	case models.CurrencyGBP:
		return price.GBPPointInboundPriceInCents, nil
	}
	// Unreachable: currency was validated above
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
}

// CreatePrice inserts a new pricing row
func (s *PricingService) CreatePrice(ctx context.Context, price *models.PointPriceConfiguration) error {
	if err := s.priceRepo.Create(ctx, price); err != nil {
		slog.Error("Failed to create pricing row", "error", err)
		return fmt.Errorf("%w: create pricing row: %v", ErrPersistence, err)
	}
	slog.Info("Pricing row created", "priceId", price.ID.Hex(), "applicableFrom", price.ApplicableFromDate)
	return nil
}

// GetPriceByID retrieves a pricing row by ID
func (s *PricingService) GetPriceByID(ctx context.Context, id primitive.ObjectID) (*models.PointPriceConfiguration, error) {
	price, err := s.priceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: pricing row %s", ErrNotFound, id.Hex())
		}
		return nil, err
	}
	return price, nil
}

// GetAllPrices retrieves the full pricing table, newest first
func (s *PricingService) GetAllPrices(ctx context.Context) ([]*models.PointPriceConfiguration, error) {
	return s.priceRepo.FindAll(ctx)
}
