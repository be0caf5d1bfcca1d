package ecoscore

import "math"

// Submission is a seller-submitted sustainability questionnaire. Every field
// is an optional boolean defaulting to false; absent answers add no points.
type Submission struct {
	IsOrganic                      bool `json:"is_organic"`
	UsesRecycledMaterials          bool `json:"uses_recycled_materials"`
	IsBiodegradable                bool `json:"is_biodegradable"`
	UsesRenewableEnergy            bool `json:"uses_renewable_energy"`
	WaterEfficient                 bool `json:"water_efficient"`
	HasEcoPackaging                bool `json:"has_eco_packaging"`
	IsMinimalPackaging             bool `json:"is_minimal_packaging"`
	IsLocal                        bool `json:"is_local"`
	CarbonNeutralShipping          bool `json:"carbon_neutral_shipping"`
	HasSustainabilityCertification bool `json:"has_sustainability_certification"`
}

type Assessment struct {
	Score          float64            `json:"eco_score"`
	RatingCategory string             `json:"rating_category"`
	Factors        []string           `json:"factors"`
	Breakdown      map[string]float64 `json:"breakdown"`
	Suggestions    []string           `json:"improvement_suggestions"`
}

const (
	ratingExcellent        = "Excellent"
	ratingVeryGood         = "Very Good"
	ratingGood             = "Good"
	ratingNeedsImprovement = "Needs Improvement"

	// questionnaire answers below this score get improvement suggestions
	suggestionThreshold = 7.0
)

type assessmentFactor struct {
	answered func(Submission) bool
	points   float64
	label    string
}

// Point schedule of the questionnaire variant. Not interchangeable with the
// stored-product calculator: the questionnaire rewards production and
// logistics answers the catalog does not track.
var assessmentFactors = []assessmentFactor{
	{func(s Submission) bool { return s.IsOrganic }, 1.5, "Organic materials: +1.5"},
	{func(s Submission) bool { return s.UsesRecycledMaterials }, 1.0, "Recycled materials: +1.0"},
	{func(s Submission) bool { return s.IsBiodegradable }, 1.0, "Biodegradable: +1.0"},
	{func(s Submission) bool { return s.UsesRenewableEnergy }, 1.0, "Renewable energy: +1.0"},
	{func(s Submission) bool { return s.WaterEfficient }, 0.5, "Water efficient: +0.5"},
	{func(s Submission) bool { return s.HasEcoPackaging }, 0.5, "Eco-friendly packaging: +0.5"},
	{func(s Submission) bool { return s.IsMinimalPackaging }, 0.5, "Minimal packaging: +0.5"},
	{func(s Submission) bool { return s.IsLocal }, 1.0, "Local production: +1.0"},
	{func(s Submission) bool { return s.CarbonNeutralShipping }, 0.5, "Carbon neutral shipping: +0.5"},
	{func(s Submission) bool { return s.HasSustainabilityCertification }, 1.0, "Sustainability certification: +1.0"},
}

var improvementSuggestions = []string{
	"Consider using more recycled materials",
	"Explore renewable energy options for production",
	"Optimize packaging to reduce waste",
}

var maintenanceSuggestions = []string{
	"Maintain your excellent sustainability practices!",
	"Consider third-party sustainability certifications",
	"Share your eco-friendly practices with customers",
}

// AssessSubmission scores a questionnaire. The result is rounded to one
// decimal and capped at 10.0; the 5.0 base plus additive-only bonuses means
// no lower clamp is reachable.
func AssessSubmission(sub Submission) Assessment {
	score := baseScore
	factors := make([]string, 0, len(assessmentFactors))

	for _, f := range assessmentFactors {
		if f.answered(sub) {
			score += f.points
			factors = append(factors, f.label)
		}
	}

	score = math.Round(score*10) / 10
	if score > maxScore {
		score = maxScore
	}

	suggestions := maintenanceSuggestions
	if score < suggestionThreshold {
		suggestions = improvementSuggestions
	}

	return Assessment{
		Score:          score,
		RatingCategory: ratingFor(score),
		Factors:        factors,
		Breakdown: map[string]float64{
			"materials":      2.0,
			"production":     2.0,
			"packaging":      1.5,
			"transportation": 1.5,
			"certifications": 1.0,
		},
		Suggestions: suggestions,
	}
}

func ratingFor(score float64) string {
	switch {
	case score >= 9:
		return ratingExcellent
	case score >= 7:
		return ratingVeryGood
	case score >= 5:
		return ratingGood
	default:
		return ratingNeedsImprovement
	}
}
