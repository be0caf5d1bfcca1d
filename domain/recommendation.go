package domain

const (
	// BasisPersonalized marks a listing produced by the preference-aware ranker.
	BasisPersonalized = "personalized"
	// BasisFallback marks a degraded listing served after an upstream failure
	// or for users without usable history.
	BasisFallback = "fallback"
)

type Recommendation struct {
	Products []Product `json:"recommended_products"`
	Basis    string    `json:"based_on"`
}

type SustainabilityInsights struct {
	CarbonSavedKg       float64  `json:"carbon_footprint_saved_kg"`
	TreesSaved          float64  `json:"trees_saved"`
	PlasticReducedKg    float64  `json:"plastic_reduced_kg"`
	Level               string   `json:"sustainability_level"`
	EcoProductsBought   int      `json:"eco_products_bought"`
	TotalProductsBought int      `json:"total_products_bought"`
	EcoFriendlyRatio    float64  `json:"eco_friendly_ratio"`
	AverageEcoScore     float64  `json:"average_eco_score"`
	Tips                []string `json:"personalized_recommendations"`
	ImpactMessage       string   `json:"impact_message"`
}
