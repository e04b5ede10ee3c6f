package services

import (
	"context"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
)

// TransactionRunner abstracts the store's atomic transaction boundary. All
// mutating operations of the grant flow (credit creation, balance
// recalculation, granted-marking) run inside one WithTransaction call so a
// partial failure cannot leave the ledger and the cached balances
// inconsistent.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PricingResolver resolves the currently effective price per point, in cents,
// for a currency as of a given date.
type PricingResolver interface {
	ResolvePricePerPoint(ctx context.Context, currency models.CurrencyType, asOf time.Time) (int64, error)
}
