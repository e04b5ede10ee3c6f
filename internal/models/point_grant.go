package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointGrant is an administrative award of points. It is a granting object:
// it produces a single GRANT credit of nonliquid points for the target
// account. OrganisationAccountCreditID stays nil until that credit has been
// issued.
type PointGrant struct {
	ID                          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	OrganisationAccountID       primitive.ObjectID  `bson:"organisationAccountId" json:"organisationAccountId"`
	NumberOfPoints              int                 `bson:"numberOfPoints" json:"numberOfPoints"`
	GrantedByID                 primitive.ObjectID  `bson:"grantedById,omitempty" json:"grantedById,omitempty"`
	Note                        string              `bson:"note,omitempty" json:"note,omitempty"`
	OrganisationAccountCreditID *primitive.ObjectID `bson:"organisationAccountCreditId,omitempty" json:"organisationAccountCreditId,omitempty"`
	CreatedAt                   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt                   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
