package reco

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_recommendations_served_total",
			Help: "Count of recommendation listings served by basis (personalized or fallback).",
		},
		[]string{"basis"},
	)

	SimilarProductsServedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reco_similar_products_served_total",
			Help: "Count of similar-product listings served.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendationsServedTotal,
		SimilarProductsServedTotal,
	)
}
