package handlers

import (
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type WasteHandler struct {
	waste    *service.WasteService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewWasteHandler(waste *service.WasteService, validate *validator.Validate, logger *zap.Logger) *WasteHandler {
	return &WasteHandler{
		waste:    waste,
		validate: validate,
		logger:   logger,
	}
}

// LogWaste godoc
// @Summary Log discarded stock
// @Tags waste
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateWasteLogRequest true "Waste entry"
// @Security Bearer
// @Success 201 {object} analytics.WasteLog
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/waste-logs [post]
func (h *WasteHandler) LogWaste(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateWasteLogRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.waste.LogWaste(c.Context(), userID, restaurantID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to log waste", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Analytics godoc
// @Summary Waste breakdown by reason, month and item
// @Tags waste
// @Produce json
// @Param id path string true "Restaurant ID"
// @Security Bearer
// @Success 200 {object} analytics.WasteAnalytics
// @Router /api/v1/restaurants/{id}/waste-analytics [get]
func (h *WasteHandler) Analytics(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.waste.Analytics(c.Context(), userID, restaurantID)
	if err != nil {
		return respondError(c, h.logger, "Failed to compute waste analytics", err)
	}
	return c.JSON(resp)
}
