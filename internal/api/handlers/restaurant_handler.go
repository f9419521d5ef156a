package handlers

import (
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	restaurants *service.RestaurantService
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewRestaurantHandler(restaurants *service.RestaurantService, validate *validator.Validate, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurants: restaurants,
		validate:    validate,
		logger:      logger,
	}
}

// Create godoc
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param request body dto.CreateRestaurantRequest true "Restaurant"
// @Security Bearer
// @Success 201 {object} dto.RestaurantResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CreateRestaurantRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.restaurants.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to create restaurant", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List the caller's restaurants
// @Tags restaurants
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.RestaurantResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	resp, err := h.restaurants.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, "Failed to list restaurants", err)
	}
	return c.JSON(resp)
}
