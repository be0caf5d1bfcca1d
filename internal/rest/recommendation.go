package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"ecomart/domain"
	"ecomart/pkg/metrics"
)

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recoService RecoService
		timeout     time.Duration
	}

	RecoService interface {
		Recommend(ctx context.Context, userID uint, limit int) (domain.Recommendation, error)
		SimilarProducts(ctx context.Context, productID uint64, limit int) ([]domain.Product, error)
		Trending(ctx context.Context, categoryID uint64, limit int) ([]domain.Product, error)
		Insights(ctx context.Context, userID uint) (domain.SustainabilityInsights, error)
	}

	RecommendQuery struct {
		Limit int `query:"limit" validate:"gte=0"`
	}

	TrendingQuery struct {
		CategoryID uint64 `query:"category_id"`
		Limit      int    `query:"limit" validate:"gte=0"`
	}
)

func NewRecommendationHandler(svc RecoService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:    validator.New(),
		recoService: svc,
		timeout:     10 * time.Second,
	}
}

// GET /api/v1/recommendations?limit=10
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	metrics.RecommendRequests.Inc()
	start := time.Now()

	rec, err := h.recoService.Recommend(ctx, userID, q.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommended_products":  rec.Products,
		"based_on":              rec.Basis,
		"total_recommendations": len(rec.Products),
	})
}

// GET /api/v1/products/:id/similar?limit=8
func (h *RecommendationHandler) SimilarProducts(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.recoService.SimilarProducts(ctx, productID, q.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"similar_products": products,
		"total_similar":    len(products),
	})
}

// GET /api/v1/recommendations/trending?category_id=3&limit=12
func (h *RecommendationHandler) Trending(c echo.Context) error {
	var q TrendingQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.recoService.Trending(ctx, q.CategoryID, q.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"trending_products": products,
		"total_trending":    len(products),
	})
}

// GET /api/v1/recommendations/insights
func (h *RecommendationHandler) Insights(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	insights, err := h.recoService.Insights(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(insights))
}
