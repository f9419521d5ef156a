package handlers

import (
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	suppliers *service.SupplierService
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewSupplierHandler(suppliers *service.SupplierService, validate *validator.Validate, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		suppliers: suppliers,
		validate:  validate,
		logger:    logger,
	}
}

// SubmitReport godoc
// @Summary Report a price paid to a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreatePriceReportRequest true "Price report"
// @Security Bearer
// @Success 201 {object} analytics.PriceReport
// @Failure 400 {object} map[string]string
// @Router /api/v1/restaurants/{id}/price-reports [post]
func (h *SupplierHandler) SubmitReport(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreatePriceReportRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.suppliers.SubmitReport(c.Context(), userID, restaurantID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to submit price report", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Intelligence godoc
// @Summary Compare latest prices with the franchise network
// @Tags suppliers
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param groupId path string true "Franchise group ID"
// @Security Bearer
// @Success 200 {object} dto.SupplierIntelligenceResponse
// @Failure 403 {object} map[string]string
// @Router /api/v1/restaurants/{id}/supplier-intelligence/{groupId} [get]
func (h *SupplierHandler) Intelligence(c *fiber.Ctx) error {
	userID, restaurantID, err := owner(c, "id")
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid groupId")
	}

	resp, err := h.suppliers.Intelligence(c.Context(), userID, restaurantID, groupID)
	if err != nil {
		return respondError(c, h.logger, "Failed to compute supplier intelligence", err)
	}
	return c.JSON(resp)
}

// FranchiseAnalytics godoc
// @Summary Network-wide summary of a franchise group
// @Tags suppliers
// @Produce json
// @Param groupId path string true "Franchise group ID"
// @Security Bearer
// @Success 200 {object} analytics.NetworkSummary
// @Failure 403 {object} map[string]string
// @Router /api/v1/franchise-groups/{groupId}/analytics [get]
func (h *SupplierHandler) FranchiseAnalytics(c *fiber.Ctx) error {
	userID, groupID, err := owner(c, "groupId")
	if err != nil {
		return err
	}

	resp, err := h.suppliers.FranchiseAnalytics(c.Context(), userID, groupID)
	if err != nil {
		return respondError(c, h.logger, "Failed to summarise franchise group", err)
	}
	return c.JSON(resp)
}

// AddApprovedSupplier godoc
// @Summary Add a supplier to a franchise group's approved list
// @Tags suppliers
// @Accept json
// @Produce json
// @Param groupId path string true "Franchise group ID"
// @Param request body dto.CreateApprovedSupplierRequest true "Approved supplier"
// @Security Bearer
// @Success 201 {object} analytics.ApprovedSupplier
// @Failure 403 {object} map[string]string
// @Router /api/v1/franchise-groups/{groupId}/approved-suppliers [post]
func (h *SupplierHandler) AddApprovedSupplier(c *fiber.Ctx) error {
	userID, groupID, err := owner(c, "groupId")
	if err != nil {
		return err
	}
	var req dto.CreateApprovedSupplierRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	resp, err := h.suppliers.AddApprovedSupplier(c.Context(), userID, groupID, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to add approved supplier", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListApprovedSuppliers godoc
// @Summary List a franchise group's approved suppliers
// @Tags suppliers
// @Produce json
// @Param groupId path string true "Franchise group ID"
// @Security Bearer
// @Success 200 {array} analytics.ApprovedSupplier
// @Failure 403 {object} map[string]string
// @Router /api/v1/franchise-groups/{groupId}/approved-suppliers [get]
func (h *SupplierHandler) ListApprovedSuppliers(c *fiber.Ctx) error {
	userID, groupID, err := owner(c, "groupId")
	if err != nil {
		return err
	}

	resp, err := h.suppliers.ListApprovedSuppliers(c.Context(), userID, groupID)
	if err != nil {
		return respondError(c, h.logger, "Failed to list approved suppliers", err)
	}
	return c.JSON(resp)
}

// RemoveApprovedSupplier godoc
// @Summary Remove a supplier from a franchise group's approved list
// @Tags suppliers
// @Param groupId path string true "Franchise group ID"
// @Param supplierId path string true "Approved supplier ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/franchise-groups/{groupId}/approved-suppliers/{supplierId} [delete]
func (h *SupplierHandler) RemoveApprovedSupplier(c *fiber.Ctx) error {
	userID, groupID, err := owner(c, "groupId")
	if err != nil {
		return err
	}
	supplierID, err := uuid.Parse(c.Params("supplierId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid supplierId")
	}

	if err := h.suppliers.RemoveApprovedSupplier(c.Context(), userID, groupID, supplierID); err != nil {
		return respondError(c, h.logger, "Failed to remove approved supplier", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
