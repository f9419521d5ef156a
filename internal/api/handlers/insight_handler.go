package handlers

import (
	"restaurant-intel/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InsightHandler struct {
	insights *service.InsightService
	logger   *zap.Logger
}

func NewInsightHandler(insights *service.InsightService, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		insights: insights,
		logger:   logger,
	}
}

// Breakeven godoc
// @Summary Breakeven analysis of the latest month
// @Tags insights
// @Produce json
// @Param id path string true "Restaurant ID"
// @Security Bearer
// @Success 200 {object} dto.BreakevenResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/restaurants/{id}/breakeven [get]
func (h *InsightHandler) Breakeven(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.insights.Breakeven(c.Context(), userID, restaurantID)
	if err != nil {
		return respondError(c, h.logger, "Failed to compute breakeven", err)
	}
	return c.JSON(resp)
}

// Recommendations godoc
// @Summary Prioritised recommendations for the latest month
// @Tags insights
// @Produce json
// @Param id path string true "Restaurant ID"
// @Security Bearer
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/restaurants/{id}/recommendations [get]
func (h *InsightHandler) Recommendations(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.insights.Recommendations(c.Context(), userID, restaurantID)
	if err != nil {
		return respondError(c, h.logger, "Failed to generate recommendations", err)
	}
	return c.JSON(resp)
}
