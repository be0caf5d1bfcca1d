package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"ecomart/business/ecoscore"
)

type EcoScoreHandler struct{}

func NewEcoScoreHandler() *EcoScoreHandler {
	return &EcoScoreHandler{}
}

// POST /api/v1/eco-score
// Scores a seller-submitted sustainability questionnaire. The calculator is
// pure, so the handler is just bind + compute.
func (h *EcoScoreHandler) Assess(c echo.Context) error {
	var sub ecoscore.Submission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	assessment := ecoscore.AssessSubmission(sub)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(assessment))
}
