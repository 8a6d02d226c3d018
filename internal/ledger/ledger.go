// Package ledger holds the append-only financial record: every income or
// expense the business books, including the sale entry written on receipt
// issuance.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a ledger entry.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Category is the fixed reporting taxonomy for ledger entries.
type Category string

const (
	CategorySale           Category = "sale"
	CategoryRawMaterial    Category = "raw-material"
	CategoryMaintenance    Category = "maintenance"
	CategoryUtilities      Category = "utilities"
	CategoryRent           Category = "rent"
	CategoryOther          Category = "other"
	CategoryInitialCapital Category = "initial-capital"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategorySale,
	CategoryRawMaterial,
	CategoryMaintenance,
	CategoryUtilities,
	CategoryRent,
	CategoryOther,
	CategoryInitialCapital,
}

// Transaction is one ledger entry. Entries accumulate indefinitely; the only
// bulk operation is a full import that replaces the whole collection.
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Type        Type      `json:"type"`
	Category    Category  `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
}

// ValidCategory reports whether c belongs to the fixed taxonomy.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}
