package models

import (
	"time"

	"github.com/dcode-github/property_valuation/valuation"
)

// SavedValuation is a descriptor and the estimate it produced, stored for
// one owner under an opaque ID.
type SavedValuation struct {
	ID         string                       `bson:"_id" json:"id"`
	Owner      string                       `bson:"owner" json:"owner"`
	Descriptor valuation.PropertyDescriptor `bson:"descriptor" json:"descriptor"`
	Result     valuation.ValuationResult    `bson:"result" json:"result"`
	CreatedAt  time.Time                    `bson:"createdAt" json:"createdAt"`
}
