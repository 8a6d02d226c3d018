// Package receipt models the immutable record of a completed sale.
package receipt

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how the client settled the sale.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentOther    PaymentMethod = "other"
)

// Item is a snapshot of one sold line. It carries the product name and unit
// price as they were at issue time, so later catalog edits never rewrite a
// past sale.
type Item struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// Receipt records a completed sale. QuoteID is set when the receipt settles
// an accepted quote; a receipt may also stand alone. A given quote is linked
// to at most one receipt.
type Receipt struct {
	ID            uuid.UUID     `json:"id"`
	QuoteID       *uuid.UUID    `json:"quoteId,omitempty"`
	ClientID      uuid.UUID     `json:"clientId"`
	Items         []Item        `json:"items"`
	TotalPrice    float64       `json:"totalPrice"`
	DiscountValue float64       `json:"discountValue,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Number        string        `json:"number"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// NumberFor formats the human-readable receipt number for the given sequence
// position. Receipts are never deleted, so the sequence never reuses a number.
func NumberFor(seq int) string {
	return fmt.Sprintf("R-%06d", seq)
}

// ForQuote returns the receipt linked to the given quote, if any.
func ForQuote(receipts []Receipt, quoteID uuid.UUID) (Receipt, bool) {
	for _, r := range receipts {
		if r.QuoteID != nil && *r.QuoteID == quoteID {
			return r, true
		}
	}

	return Receipt{}, false
}
