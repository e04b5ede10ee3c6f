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

// CartService prices and manages carts: requests to buy a quantity of points
// in a given currency.
type CartService struct {
	cartRepo repositories.CartRepository
	pricing  PricingResolver
}

// NewCartService creates a new CartService
func NewCartService(cartRepo repositories.CartRepository, pricing PricingResolver) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		pricing:  pricing,
	}
}

// PriceCart builds an unpersisted cart with its monetary fields computed from
// the quantity and the price per point effective today. Pricing and quantity
// errors propagate to the caller; the cart's totals become fixed here and are
// never recomputed if pricing changes later. The caller decides whether and
// when to save the cart.
func (s *CartService) PriceCart(ctx context.Context, account *models.OrganisationAccount, creatorID primitive.ObjectID, numberOfPoints int, currency models.CurrencyType, paymentType models.PaymentType) (*models.Cart, error) {
	if numberOfPoints <= 0 {
		return nil, fmt.Errorf("%w: number of points must be positive, got %d", ErrInvalidQuantity, numberOfPoints)
	}

	pricePerPointInCents, err := s.pricing.ResolvePricePerPoint(ctx, currency, time.Now())
	if err != nil {
		return nil, err
	}

	subtotalInCents := int64(numberOfPoints) * pricePerPointInCents
	salesTaxInCents := int64(0) // TODO: sales tax based on the organisation account's jurisdiction
	totalPayableInCents := subtotalInCents + salesTaxInCents

	return &models.Cart{
		OrganisationAccountID: account.ID,
		CreatorID:             creatorID,
		NumberOfPoints:        numberOfPoints,
		CurrencyOfPayment:     currency,
		PaymentType:           paymentType,
		PricePerPointInCents:  pricePerPointInCents,
		SubtotalInCents:       subtotalInCents,
		SalesTaxInCents:       salesTaxInCents,
		TotalPayableInCents:   totalPayableInCents,
	}, nil
}

// CreateCart prices a cart and persists it
func (s *CartService) CreateCart(ctx context.Context, account *models.OrganisationAccount, creatorID primitive.ObjectID, numberOfPoints int, currency models.CurrencyType, paymentType models.PaymentType) (*models.Cart, error) {
	cart, err := s.PriceCart(ctx, account, creatorID, numberOfPoints, currency, paymentType)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		slog.Error("Failed to save cart", "error", err, "accountId", account.ID.Hex())
		return nil, fmt.Errorf("%w: save cart: %v", ErrPersistence, err)
	}
	slog.Info("Cart created",
		"cartId", cart.ID.Hex(), "accountId", account.ID.Hex(),
		"points", numberOfPoints, "totalPayableInCents", cart.TotalPayableInCents)
	return cart, nil
}

// GetCartByID retrieves a cart by ID
func (s *CartService) GetCartByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: cart %s", ErrNotFound, id.Hex())
		}
		return nil, err
	}
	return cart, nil
}

// GetCartsByAccount lists an account's carts, newest first
func (s *CartService) GetCartsByAccount(ctx context.Context, accountID primitive.ObjectID) ([]*models.Cart, error) {
	return s.cartRepo.FindByAccountID(ctx, accountID)
}

// DeleteCart deletes a cart. Returns false and logs when the id does not
// exist.
func (s *CartService) DeleteCart(ctx context.Context, id primitive.ObjectID) bool {
	if err := s.cartRepo.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete cart", "error", err, "cartId", id.Hex())
		return false
	}
	return true
}
