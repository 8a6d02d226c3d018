package catalog_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/atelierhq/atelier/internal/catalog"
)

func TestRequirementCost(t *testing.T) {
	fabricID := uuid.New()
	threadID := uuid.New()
	fleeceID := uuid.New()

	materials := []catalog.Material{
		{ID: fabricID, Name: "Cotton", Unit: catalog.UnitLength, CostPerUnit: 10, WidthCM: 150},
		{ID: threadID, Name: "Thread", Unit: catalog.UnitCount, CostPerUnit: 2.5},
		{ID: fleeceID, Name: "Fleece", Unit: catalog.UnitLength, CostPerUnit: 8},
	}

	type testCase struct {
		name string
		req  catalog.Requirement
		want float64
	}

	tests := []testCase{
		{
			name: "AreaBilledCut",
			req:  catalog.Requirement{MaterialID: fabricID, WidthCM: 30, HeightCM: 20},
			// 10 * (30*20)/(150*100)
			want: 0.4,
		},
		{
			name: "AreaLargerThanRollUnitNotClamped",
			req:  catalog.Requirement{MaterialID: fabricID, WidthCM: 150, HeightCM: 300},
			want: 30,
		},
		{
			name: "PerUnitConsumption",
			req:  catalog.Requirement{MaterialID: threadID, Quantity: 4},
			want: 10,
		},
		{
			name: "StrayCutDimensionsOnCountMaterial",
			req:  catalog.Requirement{MaterialID: threadID, Quantity: 2, WidthCM: 50, HeightCM: 50},
			want: 5,
		},
		{
			name: "LengthMaterialWithoutRollWidthFallsBackToQuantity",
			req:  catalog.Requirement{MaterialID: fleeceID, Quantity: 1.5, WidthCM: 40, HeightCM: 40},
			want: 12,
		},
		{
			name: "MissingCutHeightFallsBackToQuantity",
			req:  catalog.Requirement{MaterialID: fabricID, Quantity: 2, WidthCM: 30},
			want: 20,
		},
		{
			name: "UnresolvedMaterialCostsNothing",
			req:  catalog.Requirement{MaterialID: uuid.New(), Quantity: 100},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.RequirementCost(tt.req, materials)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestProductCost(t *testing.T) {
	fabricID := uuid.New()
	threadID := uuid.New()

	materials := []catalog.Material{
		{ID: fabricID, Unit: catalog.UnitLength, CostPerUnit: 10, WidthCM: 150},
		{ID: threadID, Unit: catalog.UnitCount, CostPerUnit: 2},
	}

	requirements := []catalog.Requirement{
		{MaterialID: fabricID, WidthCM: 30, HeightCM: 20}, // 0.4
		{MaterialID: threadID, Quantity: 3},               // 6
	}

	t.Run("SumsRequirementsAndLabor", func(t *testing.T) {
		p := catalog.Product{Requirements: requirements, BaseLaborCost: 15}
		assert.InDelta(t, 21.4, catalog.ProductCost(p, materials), 1e-9)
	})

	t.Run("NegativeLaborClampedToZero", func(t *testing.T) {
		p := catalog.Product{Requirements: requirements, BaseLaborCost: -50}
		assert.InDelta(t, 6.4, catalog.ProductCost(p, materials), 1e-9)
	})

	t.Run("MalformedLaborTreatedAsZero", func(t *testing.T) {
		p := catalog.Product{Requirements: requirements, BaseLaborCost: math.NaN()}
		assert.InDelta(t, 6.4, catalog.ProductCost(p, materials), 1e-9)
	})

	t.Run("EmptyProduct", func(t *testing.T) {
		assert.Zero(t, catalog.ProductCost(catalog.Product{}, materials))
	})
}
