package handlers

import (
	"errors"
	"strconv"

	"restaurant-intel/internal/service"
	"restaurant-intel/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// owner resolves the caller and a UUID path parameter.
func owner(c *fiber.Ctx, param string) (userID, id uuid.UUID, err error) {
	userID, err = getUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err = uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+param)
	}
	return userID, id, nil
}

// queryInt reads an integer query parameter, falling back to def when absent.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key)
	}
	return v, nil
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *fiber.Ctx, logger *zap.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	case errors.Is(err, service.ErrNoFinancialData):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No financial data"})
	case errors.Is(err, service.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrUnknownIngredient),
		errors.Is(err, service.ErrNoFranchiseGroup):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}
