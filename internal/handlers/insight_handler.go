package handlers

import (
	"net/http"

	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightHandler serves generated financial advice
type InsightHandler struct {
	insightService services.InsightServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService services.InsightServiceInterface) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// Get asks the advisor model for insights on the user's recent activity
// @Summary AI insights
// @Tags Insights
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.InsightResponse}
// @Failure 200 {object} errors.ErrorResponse "INSIGHT_001 or INSIGHT_002"
// @Router /tracker/ai/insights [get]
func (h *InsightHandler) Get(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	insight, err := h.insightService.Generate(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Insights generated successfully", insight)
}
