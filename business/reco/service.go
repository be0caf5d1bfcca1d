package reco

import (
	"context"
	"fmt"
	"sort"

	"ecomart/domain"
	"ecomart/pkg/logger"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	// FindActiveApproved returns visible products, restricted to the given
	// categories when the slice is non-empty.
	FindActiveApproved(ctx context.Context, categoryIDs []uint64) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	// FindByCategory returns visible products in a category, excluding one
	// product (the similarity reference).
	FindByCategory(ctx context.Context, categoryID uint64, excludeID uint64) ([]domain.Product, error)
	// FindTrending returns visible products ordered by eco-score, rating and
	// recency. categoryID 0 means all categories.
	FindTrending(ctx context.Context, categoryID uint64, limit int) ([]domain.Product, error)
}

type ActivityRepository interface {
	FindPurchases(ctx context.Context, userID uint) ([]domain.PurchasedItem, error)
	FindReviews(ctx context.Context, userID uint) ([]domain.ProductReview, error)
}

// RecommendationCache holds recently served personalized listings.
type RecommendationCache interface {
	Get(ctx context.Context, userID uint, limit int) (domain.Recommendation, bool, error)
	Set(ctx context.Context, userID uint, limit int, rec domain.Recommendation) error
}

// ---- Usecase / Service ----

type Service struct {
	productRepo  ProductRepository
	activityRepo ActivityRepository
	cache        RecommendationCache
	cfg          Config
}

func NewService(
	productRepo ProductRepository,
	activityRepo ActivityRepository,
	cache RecommendationCache,
	cfg Config,
) *Service {
	return &Service{
		productRepo:  productRepo,
		activityRepo: activityRepo,
		cache:        cache,
		cfg:          cfg,
	}
}

// Relevance score weights and scale normalizers. The review mean lives on a
// 1-5 scale and the eco-score on 0-10; the original heuristic divides by 5
// and 10 respectively, so the two "preferences" end up on different ranges.
// Kept as named constants so a later correction is a one-line change.
const (
	categoryMatchPoints  = 3.0
	brandMatchPoints     = 2.0
	sustainabilityWeight = 2.0
	reviewScaleDivisor   = 5.0
	ecoScoreScaleDivisor = 10.0
)

// Recommend returns up to limit personalized products for a user. Any
// failure along the personalized path degrades to the fallback listing; the
// caller never sees an upstream error. limit 0 means the configured default.
func (s *Service) Recommend(ctx context.Context, userID uint, limit int) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}
	if limit < 0 {
		return domain.Recommendation{}, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = s.cfg.DefaultRecommendLimit
	}

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if rec, ok, err := s.cache.Get(ctx, userID, limit); err == nil && ok {
			RecommendationsServedTotal.WithLabelValues(rec.Basis).Inc()
			return rec, nil
		}
	}

	rec, err := s.personalized(ctx, userID, limit)
	if err != nil {
		logger.Error("personalized recommendation failed, serving fallback",
			"trace_id", TraceIDFromContext(ctx),
			"user_id", userID,
			"error", err,
		)
		rec = s.fallback(ctx, limit)
		RecommendationsServedTotal.WithLabelValues(rec.Basis).Inc()
		return rec, nil
	}

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if err := s.cache.Set(ctx, userID, limit, rec); err != nil {
			logger.Debug("recommendation cache write failed", "user_id", userID, "error", err)
		}
	}

	RecommendationsServedTotal.WithLabelValues(rec.Basis).Inc()
	return rec, nil
}

func (s *Service) personalized(ctx context.Context, userID uint, limit int) (domain.Recommendation, error) {
	profile, purchased, err := s.extractPreferences(ctx, userID)
	if err != nil {
		return domain.Recommendation{}, err
	}

	var categoryIDs []uint64
	for id := range profile.PreferredCategories {
		categoryIDs = append(categoryIDs, id)
	}

	candidates, err := s.productRepo.FindActiveApproved(ctx, categoryIDs)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("load candidate pool: %w", err)
	}

	pool := candidates[:0:0]
	for _, p := range candidates {
		if _, bought := purchased[p.ID]; bought {
			continue
		}
		pool = append(pool, p)
	}

	// A preferred-category restriction can legitimately empty the pool; an
	// empty personalized listing is a valid answer, not a failure.
	products := rankByRelevance(profile, pool, limit)

	return domain.Recommendation{
		Products: products,
		Basis:    domain.BasisPersonalized,
	}, nil
}

// rankByRelevance scores the candidate pool against the profile and returns
// the top products. Ties order by ascending product ID so identical inputs
// always produce identical output.
func rankByRelevance(profile PreferenceProfile, pool []domain.Product, limit int) []domain.Product {
	type scoredCandidate struct {
		product domain.Product
		score   float64
	}

	userPref := profile.AvgSustainabilityRating / reviewScaleDivisor

	scored := make([]scoredCandidate, 0, len(pool))
	for _, p := range pool {
		score := 0.0

		if _, ok := profile.PreferredCategories[p.CategoryID]; ok {
			score += categoryMatchPoints
		}
		if _, ok := profile.PreferredBrands[p.Brand]; ok {
			score += brandMatchPoints
		}

		productPref := effectiveEcoScore(p) / ecoScoreScaleDivisor
		alignment := 1 - abs(userPref-productPref)
		score += alignment * sustainabilityWeight

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
	return out
}

// fallback serves the plain trending listing. If even that fails the result
// is an empty listing, still marked as fallback.
func (s *Service) fallback(ctx context.Context, limit int) domain.Recommendation {
	products, err := s.productRepo.FindTrending(ctx, 0, limit)
	if err != nil {
		logger.Error("fallback listing failed", "trace_id", TraceIDFromContext(ctx), "error", err)
		products = []domain.Product{}
	}
	return domain.Recommendation{
		Products: products,
		Basis:    domain.BasisFallback,
	}
}

// Trending returns currently trending sustainable products, optionally
// restricted to a category. Failures degrade to an empty listing.
func (s *Service) Trending(ctx context.Context, categoryID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = s.cfg.DefaultTrendingLimit
	}

	products, err := s.productRepo.FindTrending(ctx, categoryID, limit)
	if err != nil {
		logger.Error("trending listing failed", "trace_id", TraceIDFromContext(ctx), "error", err)
		return []domain.Product{}, nil
	}
	return products, nil
}

func effectiveEcoScore(p domain.Product) float64 {
	if p.EcoScore != nil {
		return *p.EcoScore
	}
	return defaultProductEcoScore
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
