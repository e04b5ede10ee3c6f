package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganisationAccount holds the cached point balances for one organisation.
// The balances are derived from the credit ledger, not authoritative: they
// are mutated only by AccountService.RecalculateBalances and must never be
// incremented directly.
type OrganisationAccount struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrganisationID         primitive.ObjectID `bson:"organisationId" json:"organisationId"`
	LiquidPointsBalance    int64              `bson:"liquidPointsBalance" json:"liquidPointsBalance"`
	NonliquidPointsBalance int64              `bson:"nonliquidPointsBalance" json:"nonliquidPointsBalance"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
}
