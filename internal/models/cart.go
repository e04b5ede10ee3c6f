package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is a priced request to buy a quantity of points. The four monetary
// fields are computed once when the cart is priced and are never recomputed,
// even if the pricing table changes afterwards.
type Cart struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrganisationAccountID primitive.ObjectID `bson:"organisationAccountId" json:"organisationAccountId"`
	CreatorID             primitive.ObjectID `bson:"creatorId" json:"creatorId"`
	NumberOfPoints        int                `bson:"numberOfPoints" json:"numberOfPoints"`
	CurrencyOfPayment     CurrencyType       `bson:"currencyOfPayment" json:"currencyOfPayment"`
	PaymentType           PaymentType        `bson:"paymentType" json:"paymentType"`
	PricePerPointInCents  int64              `bson:"pricePerPointInCents" json:"pricePerPointInCents"`
	SubtotalInCents       int64              `bson:"subtotalInCents" json:"subtotalInCents"`
	SalesTaxInCents       int64              `bson:"salesTaxInCents" json:"salesTaxInCents"`
	TotalPayableInCents   int64              `bson:"totalPayableInCents" json:"totalPayableInCents"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
}
