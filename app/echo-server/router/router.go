package router

import (
	"github.com/labstack/echo/v4"

	"ecomart/internal/rest"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.Recommend, authRequired)
	reco.GET("/trending", handler.Trending)
	reco.GET("/insights", handler.Insights, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	products := api.Group("/products")

	products.GET("/:id/similar", handler.SimilarProducts)
}

func SetupEcoScoreRoutes(api *echo.Group, handler *rest.EcoScoreHandler) {
	api.POST("/eco-score", handler.Assess)
}
