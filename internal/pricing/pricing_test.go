package pricing_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/atelierhq/atelier/internal/catalog"
	"github.com/atelierhq/atelier/internal/pricing"
)

func TestFinalPrice(t *testing.T) {
	// Product cost is carried entirely by labor to keep the math visible.
	p := catalog.Product{BaseLaborCost: 100}

	type testCase struct {
		name   string
		margin float64
		want   float64
	}

	tests := []testCase{
		{name: "FiftyPercentMargin", margin: 50, want: 150},
		{name: "ZeroMarginIsCost", margin: 0, want: 100},
		{name: "MalformedMarginTreatedAsZero", margin: math.NaN(), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.FinalPrice(p, nil, tt.margin)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestQuoteTotals(t *testing.T) {
	productID := uuid.New()
	products := []catalog.Product{{ID: productID, BaseLaborCost: 100}}

	t.Run("MarginThenFlatDiscount", func(t *testing.T) {
		lines := []pricing.Line{{ProductID: productID, Quantity: 2}}

		got := pricing.QuoteTotals(lines, products, nil, 50, 20)
		assert.InDelta(t, 200, got.Cost, 1e-9)
		assert.InDelta(t, 280, got.Price, 1e-9)
	})

	t.Run("DiscountMayDrivePriceNegative", func(t *testing.T) {
		lines := []pricing.Line{{ProductID: productID, Quantity: 1}}

		got := pricing.QuoteTotals(lines, products, nil, 0, 500)
		assert.InDelta(t, -400, got.Price, 1e-9)
	})

	t.Run("UnresolvedProductContributesZero", func(t *testing.T) {
		lines := []pricing.Line{
			{ProductID: productID, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 10},
		}

		got := pricing.QuoteTotals(lines, products, nil, 0, 0)
		assert.InDelta(t, 100, got.Cost, 1e-9)
		assert.InDelta(t, 100, got.Price, 1e-9)
	})

	t.Run("MalformedDiscountTreatedAsZero", func(t *testing.T) {
		lines := []pricing.Line{{ProductID: productID, Quantity: 1}}

		got := pricing.QuoteTotals(lines, products, nil, 0, math.Inf(1))
		assert.InDelta(t, 100, got.Price, 1e-9)
	})
}
