package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointPriceConfiguration is a versioned pricing row: the price per point in
// cents for each supported currency, effective from a given date. Multiple
// rows may exist; the applicable row is the most recently created one whose
// effective date has passed, so a back-dated correction created later takes
// precedence over an earlier-created row.
type PointPriceConfiguration struct {
	ID                          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ApplicableFromDate          time.Time          `bson:"applicableFromDate" json:"applicableFromDate"`
	USDPointInboundPriceInCents int64              `bson:"usdPointInboundPriceInCents" json:"usdPointInboundPriceInCents"`
	EURPointInboundPriceInCents int64              `bson:"eurPointInboundPriceInCents" json:"eurPointInboundPriceInCents"`
	GBPPointInboundPriceInCents int64              `bson:"gbpPointInboundPriceInCents" json:"gbpPointInboundPriceInCents"`
	CreatedAt                   time.Time          `bson:"createdAt" json:"createdAt"`
}
