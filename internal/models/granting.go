package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GrantKind classifies a granting object and determines the credit reason and
// point type of the credit it produces.
type GrantKind string

const (
	// GrantKindSale issues SALE credits of liquid points
	GrantKindSale GrantKind = "SALE"
	// GrantKindAdministrative issues GRANT credits of nonliquid points
	GrantKindAdministrative GrantKind = "GRANT"
)

// PointsGranter is implemented by any record capable of producing a one-time
// point credit (a paid sales order, an administrative grant). A granter
// produces at most one credit over its lifetime: once RecordCredit has
// persisted the credit reference, ExistingCreditID reports it and further
// grant attempts become no-ops.
type PointsGranter interface {
	// GrantKind classifies the granter for credit reason / point type selection
	GrantKind() GrantKind
	// PointsToGrant returns the number of points this object produces
	PointsToGrant() int
	// ExistingCreditID returns the id of the credit already issued for this
	// object, or nil if none has been issued yet
	ExistingCreditID() *primitive.ObjectID
	// RecordCredit persists the credit reference on the granting object,
	// closing the idempotency window
	RecordCredit(ctx context.Context, creditID primitive.ObjectID) error
}
