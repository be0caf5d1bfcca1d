package reco

import (
	"context"
	"fmt"
	"math"

	"ecomart/domain"
	"ecomart/pkg/logger"
)

const (
	levelBeginner   = "sustainability_beginner"
	levelEnthusiast = "eco_enthusiast"
	levelChampion   = "sustainability_champion"
	levelExpert     = "eco_expert"
)

var levelTips = map[string][]string{
	levelBeginner: {
		"Start with products that have high eco-scores (8+)",
		"Try our organic collection for your next purchase",
		"Look for local products to reduce carbon footprint",
	},
	levelEnthusiast: {
		"Explore products with carbon-neutral certification",
		"Consider trying reusable alternatives to disposable items",
		"Look for products with eco-friendly packaging",
	},
	levelChampion: {
		"Try our premium eco-friendly collection",
		"Explore products from B-corp certified brands",
		"Consider products with closed-loop recycling",
	},
	levelExpert: {
		"You're making a great impact! Consider trying innovative eco-tech",
		"Explore products with regenerative agriculture practices",
		"Share your sustainability journey with others",
	},
}

// Insights summarizes a user's purchase history into environmental impact
// figures and a sustainability level. A failing store yields the beginner
// zero value rather than an error; the insights panel is never a hard
// dependency on the order subsystem.
func (s *Service) Insights(ctx context.Context, userID uint) (domain.SustainabilityInsights, error) {
	if err := ctx.Err(); err != nil {
		return domain.SustainabilityInsights{}, fmt.Errorf("context error: %w", err)
	}

	purchases, err := s.activityRepo.FindPurchases(ctx, userID)
	if err != nil {
		logger.Error("insights purchase lookup failed, serving zero value",
			"trace_id", TraceIDFromContext(ctx),
			"user_id", userID,
			"error", err,
		)
		return beginnerInsights(), nil
	}

	total := len(purchases)
	ecoBought := 0
	ecoScoreSum := 0.0
	ecoScoreCount := 0
	for _, item := range purchases {
		if item.EcoScore != nil {
			ecoScoreSum += *item.EcoScore
			ecoScoreCount++
			if *item.EcoScore >= ecoFriendlyScoreFloor {
				ecoBought++
			}
		}
	}

	avgEcoScore := 0.0
	if ecoScoreCount > 0 {
		avgEcoScore = ecoScoreSum / float64(ecoScoreCount)
	}

	level := levelBeginner
	switch {
	case ecoBought >= 15:
		level = levelExpert
	case ecoBought >= 8:
		level = levelChampion
	case ecoBought >= 3:
		level = levelEnthusiast
	}

	carbonSaved := round2(float64(ecoBought) * avgEcoScore * 0.5)

	denom := total
	if denom < 1 {
		denom = 1
	}

	return domain.SustainabilityInsights{
		CarbonSavedKg:       carbonSaved,
		TreesSaved:          round1(float64(ecoBought) * 0.3),
		PlasticReducedKg:    round1(float64(ecoBought) * 0.7),
		Level:               level,
		EcoProductsBought:   ecoBought,
		TotalProductsBought: total,
		EcoFriendlyRatio:    round1(float64(ecoBought) / float64(denom) * 100),
		AverageEcoScore:     round1(avgEcoScore),
		Tips:                levelTips[level],
		ImpactMessage:       fmt.Sprintf("You have saved approximately %.2fkg of CO2!", carbonSaved),
	}, nil
}

func beginnerInsights() domain.SustainabilityInsights {
	return domain.SustainabilityInsights{
		Level: levelBeginner,
		Tips:  levelTips[levelBeginner],
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
