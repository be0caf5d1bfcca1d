package reco

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ecomart/domain"
)

// PreferenceProfile is the implicit preference summary derived from a user's
// activity. It is computed fresh on each request and never persisted.
type PreferenceProfile struct {
	PreferredCategories     map[uint64]struct{}
	PreferredBrands         map[string]struct{}
	AvgSustainabilityRating float64
}

// extractPreferences scans purchase history and reviews. Purchases and
// reviews are independent reads, so they are fetched concurrently. The
// purchased-product ID set is returned alongside the profile because the
// ranker needs it for pool exclusion and it comes from the same rows.
func (s *Service) extractPreferences(ctx context.Context, userID uint) (PreferenceProfile, map[uint64]struct{}, error) {
	var (
		purchases []domain.PurchasedItem
		reviews   []domain.ProductReview
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		purchases, err = s.activityRepo.FindPurchases(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.activityRepo.FindReviews(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return PreferenceProfile{}, nil, fmt.Errorf("load user activity: %w", err)
	}

	profile := PreferenceProfile{
		PreferredCategories:     make(map[uint64]struct{}, len(purchases)),
		PreferredBrands:         make(map[string]struct{}, len(purchases)),
		AvgSustainabilityRating: defaultSustainabilityRating,
	}

	purchased := make(map[uint64]struct{}, len(purchases))
	for _, item := range purchases {
		purchased[item.ProductID] = struct{}{}
		profile.PreferredCategories[item.CategoryID] = struct{}{}
		profile.PreferredBrands[item.Brand] = struct{}{}
	}

	sum := 0.0
	count := 0
	for _, r := range reviews {
		if r.SustainabilityRating == nil {
			continue
		}
		sum += float64(*r.SustainabilityRating)
		count++
	}
	if count > 0 {
		profile.AvgSustainabilityRating = sum / float64(count)
	}

	return profile, purchased, nil
}
