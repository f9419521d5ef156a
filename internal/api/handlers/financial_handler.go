package handlers

import (
	"time"

	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FinancialHandler struct {
	financial *service.FinancialService
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewFinancialHandler(financial *service.FinancialService, validate *validator.Validate, logger *zap.Logger) *FinancialHandler {
	return &FinancialHandler{
		financial: financial,
		validate:  validate,
		logger:    logger,
		now:       time.Now,
	}
}

// AddMonthly godoc
// @Summary Record a month of trading figures
// @Tags financials
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateMonthlyDataRequest true "Monthly figures"
// @Security Bearer
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/restaurants/{id}/monthly-data [post]
func (h *FinancialHandler) AddMonthly(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateMonthlyDataRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.financial.AddMonthly(c.Context(), userID, restaurantID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to save monthly data", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMonthly godoc
// @Summary List monthly records in entry order
// @Tags financials
// @Produce json
// @Param id path string true "Restaurant ID"
// @Security Bearer
// @Success 200 {array} dto.PeriodResponse
// @Router /api/v1/restaurants/{id}/monthly-data [get]
func (h *FinancialHandler) ListMonthly(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.financial.ListMonthly(c.Context(), userID, restaurantID)
	if err != nil {
		return respondError(c, h.logger, "Failed to list monthly data", err)
	}
	return c.JSON(resp)
}

// AddWeekly godoc
// @Summary Record a week of trading figures
// @Tags financials
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateWeeklyDataRequest true "Weekly figures"
// @Security Bearer
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/weekly-data [post]
func (h *FinancialHandler) AddWeekly(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateWeeklyDataRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.financial.AddWeekly(c.Context(), userID, restaurantID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to save weekly data", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListWeekly godoc
// @Summary List weekly records in entry order
// @Tags financials
// @Produce json
// @Param id path string true "Restaurant ID"
// @Security Bearer
// @Success 200 {array} dto.PeriodResponse
// @Router /api/v1/restaurants/{id}/weekly-data [get]
func (h *FinancialHandler) ListWeekly(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.financial.ListWeekly(c.Context(), userID, restaurantID)
	if err != nil {
		return respondError(c, h.logger, "Failed to list weekly data", err)
	}
	return c.JSON(resp)
}

// Quarterly godoc
// @Summary Compare a quarter with the same quarter last year
// @Tags comparisons
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param quarter query int false "Quarter 1-4, defaults to the current quarter"
// @Param year query int false "Year, defaults to the current year"
// @Security Bearer
// @Success 200 {object} analytics.QuarterComparison
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/comparisons/quarterly [get]
func (h *FinancialHandler) Quarterly(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	now := h.now()
	quarter, err := queryInt(c, "quarter", (int(now.Month())-1)/3+1)
	if err != nil {
		return err
	}
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		return err
	}

	resp, err := h.financial.CompareQuarter(c.Context(), userID, restaurantID, quarter, year)
	if err != nil {
		return respondError(c, h.logger, "Failed to compare quarters", err)
	}
	return c.JSON(resp)
}

// HalfYearly godoc
// @Summary Compare a half-year with the same half last year
// @Tags comparisons
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param half query int false "Half 1-2, defaults to the current half"
// @Param year query int false "Year, defaults to the current year"
// @Security Bearer
// @Success 200 {object} analytics.HalfComparison
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/comparisons/half-yearly [get]
func (h *FinancialHandler) HalfYearly(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	now := h.now()
	defHalf := 1
	if now.Month() > time.June {
		defHalf = 2
	}
	half, err := queryInt(c, "half", defHalf)
	if err != nil {
		return err
	}
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		return err
	}

	resp, err := h.financial.CompareHalf(c.Context(), userID, restaurantID, half, year)
	if err != nil {
		return respondError(c, h.logger, "Failed to compare halves", err)
	}
	return c.JSON(resp)
}

// Weekly godoc
// @Summary Compare a week with the previous week
// @Tags comparisons
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param week query int false "ISO week 1-53, defaults to the current week"
// @Param year query int false "Year, defaults to the current ISO year"
// @Security Bearer
// @Success 200 {object} analytics.WeekComparison
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/comparisons/weekly [get]
func (h *FinancialHandler) Weekly(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	isoYear, isoWeek := h.now().ISOWeek()
	week, err := queryInt(c, "week", isoWeek)
	if err != nil {
		return err
	}
	year, err := queryInt(c, "year", isoYear)
	if err != nil {
		return err
	}

	resp, err := h.financial.CompareWeek(c.Context(), userID, restaurantID, week, year)
	if err != nil {
		return respondError(c, h.logger, "Failed to compare weeks", err)
	}
	return c.JSON(resp)
}
