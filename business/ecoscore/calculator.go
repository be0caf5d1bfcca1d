package ecoscore

import (
	"ecomart/domain"
)

const (
	baseScore = 5.0

	certificationBonus = 0.5
	organicBonus       = 1.0
	veganBonus         = 0.5
	crueltyFreeBonus   = 0.5
	recyclableBonus    = 0.5

	// carbon footprint thresholds in kg CO2
	lowCarbonThreshold  = 1.0
	highCarbonThreshold = 5.0
	lowCarbonBonus      = 1.0
	highCarbonPenalty   = 1.0

	minScore = 0.0
	maxScore = 10.0
)

// ProductAttributes is the sustainability attribute set of a stored product.
type ProductAttributes struct {
	Certifications  []string
	IsOrganic       bool
	IsVegan         bool
	IsCrueltyFree   bool
	IsRecyclable    bool
	CarbonFootprint *float64
}

// FromProduct extracts the scoring attributes from a catalog product.
func FromProduct(p domain.Product) ProductAttributes {
	return ProductAttributes{
		Certifications:  p.SustainabilityCertifications,
		IsOrganic:       p.IsOrganic,
		IsVegan:         p.IsVegan,
		IsCrueltyFree:   p.IsCrueltyFree,
		IsRecyclable:    p.IsRecyclable,
		CarbonFootprint: p.CarbonFootprint,
	}
}

// ComputeProductScore maps product sustainability attributes onto a score in
// [0, 10]. The certification bonus is deliberately uncapped; the final clamp
// is the only bound.
func ComputeProductScore(attrs ProductAttributes) float64 {
	score := baseScore

	score += float64(len(attrs.Certifications)) * certificationBonus

	if attrs.IsOrganic {
		score += organicBonus
	}
	if attrs.IsVegan {
		score += veganBonus
	}
	if attrs.IsCrueltyFree {
		score += crueltyFreeBonus
	}
	if attrs.IsRecyclable {
		score += recyclableBonus
	}

	if attrs.CarbonFootprint != nil {
		switch {
		case *attrs.CarbonFootprint < lowCarbonThreshold:
			score += lowCarbonBonus
		case *attrs.CarbonFootprint > highCarbonThreshold:
			score -= highCarbonPenalty
		}
	}

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
