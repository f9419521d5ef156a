package handlers

import (
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuHandler struct {
	menu     *service.MenuService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewMenuHandler(menu *service.MenuService, validate *validator.Validate, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		menu:     menu,
		validate: validate,
		logger:   logger,
	}
}

// AddIngredient godoc
// @Summary Add an ingredient with its purchase price
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateIngredientRequest true "Ingredient"
// @Security Bearer
// @Success 201 {object} dto.IngredientResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/ingredients [post]
func (h *MenuHandler) AddIngredient(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateIngredientRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.menu.AddIngredient(c.Context(), userID, restaurantID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to add ingredient", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListIngredients godoc
// @Summary List ingredients
// @Tags menu
// @Produce json
// @Param id path string true "Restaurant ID"
// @Security Bearer
// @Success 200 {array} dto.IngredientResponse
// @Router /api/v1/restaurants/{id}/ingredients [get]
func (h *MenuHandler) ListIngredients(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.menu.ListIngredients(c.Context(), userID, restaurantID)
	if err != nil {
		return respondError(c, h.logger, "Failed to list ingredients", err)
	}
	return c.JSON(resp)
}

// AddMenuItem godoc
// @Summary Add a dish with its recipe
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateMenuItemRequest true "Menu item"
// @Security Bearer
// @Success 201 {object} analytics.MenuItem
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/menu-items [post]
func (h *MenuHandler) AddMenuItem(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateMenuItemRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.menu.AddMenuItem(c.Context(), userID, restaurantID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to add menu item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SetMenuItemStatus godoc
// @Summary Take a dish on or off the live menu
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param itemId path string true "Menu item ID"
// @Param request body dto.MenuItemStatusRequest true "Availability"
// @Security Bearer
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/v1/restaurants/{id}/menu-items/{itemId}/status [put]
func (h *MenuHandler) SetMenuItemStatus(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid itemId")
	}
	var req dto.MenuItemStatusRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	if err := h.menu.SetMenuItemActive(c.Context(), userID, restaurantID, itemID, *req.IsActive); err != nil {
		return respondError(c, h.logger, "Failed to update menu item", err)
	}
	return c.JSON(fiber.Map{"isActive": *req.IsActive})
}

// Engineering godoc
// @Summary Menu engineering matrix with flat popularity
// @Tags menu
// @Produce json
// @Param id path string true "Restaurant ID"
// @Security Bearer
// @Success 200 {object} dto.MenuEngineeringResponse
// @Router /api/v1/restaurants/{id}/menu-engineering [get]
func (h *MenuHandler) Engineering(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.menu.Engineer(c.Context(), userID, restaurantID, nil)
	if err != nil {
		return respondError(c, h.logger, "Failed to classify menu", err)
	}
	return c.JSON(resp)
}

// EngineeringWithSales godoc
// @Summary Menu engineering matrix using unit sales for popularity
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.MenuEngineeringRequest true "Unit sales per menu item"
// @Security Bearer
// @Success 200 {object} dto.MenuEngineeringResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/menu-engineering [post]
func (h *MenuHandler) EngineeringWithSales(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	var req dto.MenuEngineeringRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.menu.Engineer(c.Context(), userID, restaurantID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to classify menu", err)
	}
	return c.JSON(resp)
}
