package reco

import "time"

type Config struct {
	// minimum accumulated similarity score for a candidate to appear in
	// similar-product results
	MinSimilarity float64

	DefaultRecommendLimit int
	DefaultSimilarLimit   int
	DefaultTrendingLimit  int

	// TTL for cached personalized listings; zero disables caching even when
	// a cache is wired
	CacheTTL time.Duration
}

const (
	defaultMinSimilarity         = 0.1
	defaultRecommendLimit        = 10
	defaultSimilarLimit          = 8
	defaultTrendingLimit         = 12
	defaultCacheTTL              = 5 * time.Minute
	ecoFriendlyScoreFloor        = 7.0
	defaultSustainabilityRating  = 5.0
	defaultProductEcoScore       = 5.0
	maxSimilarEcoScoreDifference = 2.0
	priceProximityRatio          = 0.8
)

func DefaultConfig() Config {
	return Config{
		MinSimilarity:         defaultMinSimilarity,
		DefaultRecommendLimit: defaultRecommendLimit,
		DefaultSimilarLimit:   defaultSimilarLimit,
		DefaultTrendingLimit:  defaultTrendingLimit,
		CacheTTL:              defaultCacheTTL,
	}
}
