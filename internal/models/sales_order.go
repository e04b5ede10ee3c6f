package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesOrder is a completed point sale. It is a granting object: once paid it
// produces a single SALE credit of liquid points for the buying account.
// OrganisationAccountCreditID stays nil until that credit has been issued.
type SalesOrder struct {
	ID                          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	OrganisationAccountID       primitive.ObjectID  `bson:"organisationAccountId" json:"organisationAccountId"`
	CartID                      primitive.ObjectID  `bson:"cartId,omitempty" json:"cartId,omitempty"`
	NumberOfPoints              int                 `bson:"numberOfPoints" json:"numberOfPoints"`
	OrganisationAccountCreditID *primitive.ObjectID `bson:"organisationAccountCreditId,omitempty" json:"organisationAccountCreditId,omitempty"`
	CreatedAt                   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt                   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
