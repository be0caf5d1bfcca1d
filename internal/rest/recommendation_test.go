package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomart/domain"
)

type fakeRecoService struct {
	recommendation domain.Recommendation
	similar        []domain.Product
	trending       []domain.Product
	insights       domain.SustainabilityInsights
	err            error
}

func (f *fakeRecoService) Recommend(_ context.Context, _ uint, _ int) (domain.Recommendation, error) {
	return f.recommendation, f.err
}

func (f *fakeRecoService) SimilarProducts(_ context.Context, _ uint64, _ int) ([]domain.Product, error) {
	return f.similar, f.err
}

func (f *fakeRecoService) Trending(_ context.Context, _ uint64, _ int) ([]domain.Product, error) {
	return f.trending, f.err
}

func (f *fakeRecoService) Insights(_ context.Context, _ uint) (domain.SustainabilityInsights, error) {
	return f.insights, f.err
}

func newEchoContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRecommend_OK(t *testing.T) {
	svc := &fakeRecoService{recommendation: domain.Recommendation{
		Products: []domain.Product{{ID: 1}, {ID: 2}},
		Basis:    domain.BasisPersonalized,
	}}
	h := NewRecommendationHandler(svc)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/recommendations?limit=10")
	c.Set("user_id", uint(7))

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "recommended_products")
	assert.JSONEq(t, `"personalized"`, string(body["based_on"]))
	assert.JSONEq(t, `2`, string(body["total_recommendations"]))
}

func TestRecommend_MissingUser(t *testing.T) {
	h := NewRecommendationHandler(&fakeRecoService{})

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/recommendations")

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecommend_InvalidLimit(t *testing.T) {
	h := NewRecommendationHandler(&fakeRecoService{err: domain.ErrInvalidLimit})

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/recommendations")
	c.Set("user_id", uint(7))

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimilarProducts_OK(t *testing.T) {
	svc := &fakeRecoService{similar: []domain.Product{{ID: 5}}}
	h := NewRecommendationHandler(svc)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/products/1/similar")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.SimilarProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_similar":1`)
}

func TestSimilarProducts_NotFound(t *testing.T) {
	h := NewRecommendationHandler(&fakeRecoService{err: domain.ErrProductNotFound})

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/products/99/similar")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.SimilarProducts(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimilarProducts_BadID(t *testing.T) {
	h := NewRecommendationHandler(&fakeRecoService{})

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/products/abc/similar")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.SimilarProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrending_OK(t *testing.T) {
	svc := &fakeRecoService{trending: []domain.Product{{ID: 1}, {ID: 2}, {ID: 3}}}
	h := NewRecommendationHandler(svc)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/recommendations/trending?category_id=3")

	require.NoError(t, h.Trending(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_trending":3`)
}

func TestInsights_OK(t *testing.T) {
	svc := &fakeRecoService{insights: domain.SustainabilityInsights{
		Level: "eco_enthusiast",
		Tips:  []string{"Look for products with eco-friendly packaging"},
	}}
	h := NewRecommendationHandler(svc)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/recommendations/insights")
	c.Set("user_id", uint(7))

	require.NoError(t, h.Insights(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "eco_enthusiast")
}

func TestEcoScoreAssess_OK(t *testing.T) {
	h := NewEcoScoreHandler()

	e := echo.New()
	payload := `{"is_organic": true, "water_efficient": true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/eco-score", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Assess(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eco_score":7`)
	assert.Contains(t, rec.Body.String(), "Very Good")
}
