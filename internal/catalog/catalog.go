package catalog

import (
	"github.com/google/uuid"
)

// Unit is the unit of measure a material is bought in.
type Unit string

const (
	// UnitLength covers materials sold by linear length, e.g. fabric off a roll.
	UnitLength Unit = "length"
	UnitCount  Unit = "count"
	UnitMass   Unit = "mass"
)

// Material is a raw material used to build products.
type Material struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Unit        Unit      `json:"unit"`
	CostPerUnit float64   `json:"costPerUnit"`
	// WidthCM is the commercial roll width in centimeters.
	// Only meaningful for length materials bought as cut fabric.
	WidthCM float64 `json:"widthCm,omitempty"`
}

// Requirement is the amount of one material a product consumes, either as a
// plain quantity or as a cut rectangle against a rolled material.
type Requirement struct {
	MaterialID uuid.UUID `json:"materialId"`
	Quantity   float64   `json:"quantity,omitempty"`
	WidthCM    float64   `json:"widthCm,omitempty"`
	HeightCM   float64   `json:"heightCm,omitempty"`
}

// Product is a sellable item built from material requirements plus labor.
type Product struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Requirements  []Requirement `json:"requirements"`
	BaseLaborCost float64       `json:"baseLaborCost"`
	ImageURL      string        `json:"imageUrl,omitempty"`
}

// MaterialByID looks up a material in the collection. The second return value
// reports whether the reference resolved.
func MaterialByID(materials []Material, id uuid.UUID) (Material, bool) {
	for _, m := range materials {
		if m.ID == id {
			return m, true
		}
	}

	return Material{}, false
}

// ProductByID looks up a product in the collection.
func ProductByID(products []Product, id uuid.UUID) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}
