// Package pricing derives sellable prices from product costs: margin markup,
// flat discounts, and quote-level totals. Every public operation coerces
// malformed numeric input to zero rather than failing.
package pricing

import (
	"math"

	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/catalog"
)

// Line is one quote line: a product reference and how many units of it.
type Line struct {
	ProductID uuid.UUID
	Quantity  int
}

// Totals is the derived cost/price pair stored on a quote.
type Totals struct {
	Cost  float64
	Price float64
}

// FinalPrice marks a product's cost up by the given margin percent.
func FinalPrice(p catalog.Product, materials []catalog.Material, marginPercent float64) float64 {
	return catalog.ProductCost(p, materials) * (1 + num(marginPercent)/100)
}

// QuoteCost sums product costs across the lines. Lines whose product no
// longer resolves contribute zero.
func QuoteCost(lines []Line, products []catalog.Product, materials []catalog.Material) float64 {
	var cost float64

	for _, line := range lines {
		p, ok := catalog.ProductByID(products, line.ProductID)
		if !ok {
			continue
		}

		cost += catalog.ProductCost(p, materials) * float64(line.Quantity)
	}

	return cost
}

// QuoteTotals computes a quote's derived totals: price is the marked-up cost
// minus a flat discount. The discount is applied after margin and is not
// clamped here; a discount larger than the marked-up price drives the price
// negative and the caller is expected to warn.
func QuoteTotals(lines []Line, products []catalog.Product, materials []catalog.Material, marginPercent, discount float64) Totals {
	cost := QuoteCost(lines, products, materials)

	return Totals{
		Cost:  cost,
		Price: cost*(1+num(marginPercent)/100) - num(discount),
	}
}

func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
