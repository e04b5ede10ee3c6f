package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointType distinguishes points by origin. Liquid points come from monetary
// sales; nonliquid points come from administrative grants.
type PointType string

const (
	PointTypeLiquid    PointType = "LIQUID"
	PointTypeNonliquid PointType = "NONLIQUID"
)

// CreditReason records why a credit was issued
type CreditReason string

const (
	CreditReasonGrant CreditReason = "GRANT"
	CreditReasonSale  CreditReason = "SALE"
)

// Credit is one entry in an account's append-only credit ledger. Entries are
// immutable in the issuance flow; administrative update and deletion exist as
// separate operations.
type Credit struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrganisationAccountID primitive.ObjectID `bson:"organisationAccountId" json:"organisationAccountId"`
	NumberOfPoints        int                `bson:"numberOfPoints" json:"numberOfPoints"`
	TypeOfPoints          PointType          `bson:"typeOfPoints" json:"typeOfPoints"`
	CreditReason          CreditReason       `bson:"creditReason" json:"creditReason"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
}
