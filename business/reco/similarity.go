package reco

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"ecomart/domain"
)

// SimilarProducts finds and ranks products comparable to the given one within
// its category. The reference must resolve to a visible product; otherwise
// domain.ErrProductNotFound is returned.
func (s *Service) SimilarProducts(ctx context.Context, productID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = s.cfg.DefaultSimilarLimit
	}

	ref, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("load reference product: %w", err)
	}
	if !ref.IsActive || !ref.IsApproved {
		return nil, domain.ErrProductNotFound
	}

	candidates, err := s.productRepo.FindByCategory(ctx, ref.CategoryID, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("load similarity candidates: %w", err)
	}

	type scoredCandidate struct {
		product domain.Product
		score   float64
	}

	refEco := effectiveEcoScore(ref)

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, p := range candidates {
		score := 0.0

		if p.Brand == ref.Brand {
			score += brandMatchPoints
		}
		if priceRatio(p.Price, ref.Price) > priceProximityRatio {
			score += 1
		}
		if abs(effectiveEcoScore(p)-refEco) <= maxSimilarEcoScoreDifference {
			score += 1
		}

		if score < s.cfg.MinSimilarity {
			continue
		}
		scored = append(scored, scoredCandidate{product: p, score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].product.ID < scored[j].product.ID
	})

	if limit > len(scored) {
		limit = len(scored)
	}

	out := make([]domain.Product, 0, limit)
	for _, sc := range scored[:limit] {
		out = append(out, sc.product)
	}

	SimilarProductsServedTotal.Inc()
	return out, nil
}

// priceRatio returns min/max of two prices, or 0 when either price is zero
// so that a zero-priced product never earns the proximity point.
func priceRatio(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a < b {
		return a / b
	}
	return b / a
}
