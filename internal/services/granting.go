package services

import (
	"context"

	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time checks for the granter adapters
var (
	_ models.PointsGranter = (*SalesOrderGranter)(nil)
	_ models.PointsGranter = (*PointGrantGranter)(nil)
)

// SalesOrderGranter adapts a SalesOrder to the PointsGranter contract,
// persisting the credit linkage through the sales order repository.
type SalesOrderGranter struct {
	Order *models.SalesOrder
	repo  repositories.SalesOrderRepository
}

// NewSalesOrderGranter creates a granter for a sales order
func NewSalesOrderGranter(order *models.SalesOrder, repo repositories.SalesOrderRepository) *SalesOrderGranter {
	return &SalesOrderGranter{Order: order, repo: repo}
}

// GrantKind reports this granter as a sale
func (g *SalesOrderGranter) GrantKind() models.GrantKind {
	return models.GrantKindSale
}

// PointsToGrant returns the points sold by the order
func (g *SalesOrderGranter) PointsToGrant() int {
	return g.Order.NumberOfPoints
}

// ExistingCreditID returns the credit already issued for the order, if any
func (g *SalesOrderGranter) ExistingCreditID() *primitive.ObjectID {
	return g.Order.OrganisationAccountCreditID
}

// RecordCredit persists the credit reference on the order
func (g *SalesOrderGranter) RecordCredit(ctx context.Context, creditID primitive.ObjectID) error {
	g.Order.OrganisationAccountCreditID = &creditID
	return g.repo.Update(ctx, g.Order)
}

// PointGrantGranter adapts an administrative PointGrant to the PointsGranter
// contract, persisting the credit linkage through the point grant repository.
type PointGrantGranter struct {
	Grant *models.PointGrant
	repo  repositories.PointGrantRepository
}

// NewPointGrantGranter creates a granter for an administrative grant
func NewPointGrantGranter(grant *models.PointGrant, repo repositories.PointGrantRepository) *PointGrantGranter {
	return &PointGrantGranter{Grant: grant, repo: repo}
}

// GrantKind reports this granter as an administrative grant
func (g *PointGrantGranter) GrantKind() models.GrantKind {
	return models.GrantKindAdministrative
}

// PointsToGrant returns the points awarded by the grant
func (g *PointGrantGranter) PointsToGrant() int {
	return g.Grant.NumberOfPoints
}

// ExistingCreditID returns the credit already issued for the grant, if any
func (g *PointGrantGranter) ExistingCreditID() *primitive.ObjectID {
	return g.Grant.OrganisationAccountCreditID
}

// RecordCredit persists the credit reference on the grant
func (g *PointGrantGranter) RecordCredit(ctx context.Context, creditID primitive.ObjectID) error {
	g.Grant.OrganisationAccountCreditID = &creditID
	return g.repo.Update(ctx, g.Grant)
}
