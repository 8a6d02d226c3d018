// Package quote models client-addressed proposals and their lifecycle status.
package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/pricing"
)

// Status is the lifecycle state of a quote. This is a business form, not a
// strict workflow: any status may move to any other.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Item is one line of a quote. PriceOverride is advisory display data entered
// by the operator; quote totals are always computed from the catalog.
type Item struct {
	ProductID     uuid.UUID `json:"productId"`
	Quantity      int       `json:"quantity"`
	PriceOverride float64   `json:"priceOverride,omitempty"`
}

// Quote is a priced proposal. TotalCost and TotalPrice are derived values,
// recomputed from items, margin, and discount on every save; stored totals
// are never trusted as input.
type Quote struct {
	ID             uuid.UUID `json:"id"`
	ClientID       uuid.UUID `json:"clientId"`
	Items          []Item    `json:"items"`
	MarginPercent  float64   `json:"marginPercent"`
	TotalCost      float64   `json:"totalCost"`
	TotalPrice     float64   `json:"totalPrice"`
	DiscountValue  float64   `json:"discountValue,omitempty"`
	DiscountReason string    `json:"discountReason,omitempty"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Lines converts quote items to pricing lines.
func Lines(items []Item) []pricing.Line {
	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	return lines
}

// ByID looks up a quote in the collection.
func ByID(quotes []Quote, id uuid.UUID) (Quote, bool) {
	for _, q := range quotes {
		if q.ID == id {
			return q, true
		}
	}

	return Quote{}, false
}
