package catalog

import "math"

// RequirementCost computes the cost of a single material requirement.
// A requirement whose material no longer exists contributes zero; it never
// fails the whole computation.
//
// Length materials with a commercial roll width are billed by cut area: the
// cut rectangle is priced as the fraction of one linear unit of roll it
// consumes, cut dimensions and roll width both in centimeters. Everything
// else is billed per unit.
func RequirementCost(req Requirement, materials []Material) float64 {
	m, ok := MaterialByID(materials, req.MaterialID)
	if !ok {
		return 0
	}

	if m.Unit == UnitLength && req.WidthCM > 0 && req.HeightCM > 0 && m.WidthCM > 0 {
		return num(m.CostPerUnit) * (req.WidthCM * req.HeightCM) / (m.WidthCM * 100)
	}

	return num(m.CostPerUnit) * num(req.Quantity)
}

// ProductCost is the sum of all requirement costs plus the base labor cost.
// Negative or malformed labor cost counts as zero.
func ProductCost(p Product, materials []Material) float64 {
	var total float64
	for _, req := range p.Requirements {
		total += RequirementCost(req, materials)
	}

	return total + math.Max(0, num(p.BaseLaborCost))
}

// num coerces non-finite values to zero so malformed numeric input degrades
// instead of poisoning a whole cost computation.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
