// Package appdata owns the aggregate business data set and its local
// snapshot. All other components receive AppData by value and return
// transformed copies; nothing mutates shared state in place.
package appdata

import (
	"github.com/atelierhq/atelier/internal/catalog"
	"github.com/atelierhq/atelier/internal/client"
	"github.com/atelierhq/atelier/internal/ledger"
	"github.com/atelierhq/atelier/internal/quote"
	"github.com/atelierhq/atelier/internal/receipt"
)

// Settings is client-local configuration. It is seeded on first load and is
// never overwritten by remote reconciliation.
type Settings struct {
	BrandName            string  `json:"brandName"`
	DefaultMarginPercent float64 `json:"defaultMarginPercent"`
	ContactPhone         string  `json:"contactPhone,omitempty"`
	StorefrontTagline    string  `json:"storefrontTagline,omitempty"`
}

// AppData is the aggregate root: every business collection plus settings.
type AppData struct {
	Materials    []catalog.Material   `json:"materials"`
	Products     []catalog.Product    `json:"products"`
	Clients      []client.Client      `json:"clients"`
	Quotes       []quote.Quote        `json:"quotes"`
	Receipts     []receipt.Receipt    `json:"receipts"`
	Transactions []ledger.Transaction `json:"transactions"`
	Settings     Settings             `json:"settings"`
}

// Seed returns the default empty data set used when no snapshot exists yet
// or the stored one cannot be read.
func Seed() AppData {
	return AppData{
		Settings: Settings{
			BrandName:            "Atelier",
			DefaultMarginPercent: 30,
		},
	}
}
